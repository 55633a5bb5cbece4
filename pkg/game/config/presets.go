package config

import (
	"sort"

	"github.com/leonelquinteros/gotext"

	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

// DefaultPreset is used when neither the config file nor the environment picks one
const DefaultPreset = "rogue"

// preset is a named set of strategies and their tunables
type preset struct {
	description string // gettext message id
	placement   generator.PlacementConfig
	routing     generator.RoutingConfig
	connector   generator.ConnectorConfig
}

var mixedRouting = generator.RoutingConfig{
	Kind:           generator.RoutingMixed,
	StraightWeight: 1,
	ZShapeWeight:   6,
}

var presets = map[string]preset{
	"rogue": {
		description: "3x3 grid of rooms dug in a walk from room to room",
		placement: generator.PlacementConfig{
			Kind:        generator.PlacementGrid,
			MinRoomSize: 4,
			GridColumns: 3,
			GridRows:    3,
		},
		routing: mixedRouting,
		connector: generator.ConnectorConfig{
			Kind:          generator.ConnectorFollowNearest,
			MaxDistance:   generator.DefaultMaxConnectionDistance,
			RepairRetries: generator.DefaultRepairRetries,
		},
	},
	"scatter": {
		description: "randomly scattered rooms linked to their nearest neighbours",
		placement: generator.PlacementConfig{
			Kind:               generator.PlacementScatter,
			MinRoomSize:        5,
			MaxRoomSize:        14,
			MaxRoomAreaFactor:  0.05,
			MinRoomsAreaFactor: 0.35,
		},
		routing: mixedRouting,
		connector: generator.ConnectorConfig{
			Kind:          generator.ConnectorRandomNearest,
			MaxDistance:   generator.DefaultMaxConnectionDistance,
			RepairRetries: generator.DefaultRepairRetries,
		},
	},
	"bsp": {
		description: "binary space partition with sibling rooms joined first",
		placement: generator.PlacementConfig{
			Kind:           generator.PlacementBSP,
			MinRoomSize:    5,
			BSPDepth:       4,
			MinAspectRatio: generator.DefaultMinAspectRatio,
		},
		routing: mixedRouting,
		connector: generator.ConnectorConfig{
			Kind:          generator.ConnectorBSPSibling,
			MaxDistance:   generator.DefaultMaxConnectionDistance,
			RepairRetries: generator.DefaultRepairRetries,
		},
	},
}

// Presets returns the preset names in alphabetical order
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DescribePreset returns the translated description of a preset, or "" if it does not exist
func DescribePreset(name string) string {
	p, ok := presets[name]
	if !ok {
		return ""
	}
	return gotext.Get(p.description)
}
