package setup

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

// DoorPositions decides where doors go.
//
// Short corridors (length 0 or 1) always get exactly one door. Longer ones get
// a door at each allowed end with probability endChance. Doors are only ever
// placed on a corridor's allowed door positions.
func DoorPositions(rnd *rng.Rand, corridors []*generator.Corridor, endChance float64) []world.Position {
	placed := mapset.New[world.Position]()
	var doors []world.Position
	add := func(pos world.Position) {
		if !placed.Has(pos) {
			placed.Put(pos)
			doors = append(doors, pos)
		}
	}

	for _, corridor := range corridors {
		allowed := corridor.AllowedDoors()
		if len(allowed) == 0 {
			continue
		}
		if corridor.Length <= 1 {
			add(rng.Choice(rnd, allowed))
			continue
		}
		for _, pos := range allowed {
			if rnd.Chance(endChance) {
				add(pos)
			}
		}
	}
	return doors
}

// isDoorAllowed reports whether any corridor of level allows a door at pos
func isDoorAllowed(level *generator.Level, pos world.Position) bool {
	for _, corridor := range level.Corridors {
		if corridor.IsDoorAllowed(pos) {
			return true
		}
	}
	return false
}
