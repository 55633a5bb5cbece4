// Package config loads generator and logging settings from YAML with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/setup"
)

// Config is the top level configuration file
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Logging   logger.Config   `yaml:"logging"`
}

// GeneratorConfig holds everything needed to build a level generator
type GeneratorConfig struct {
	Seed   int64  `yaml:"seed"`
	Preset string `yaml:"preset"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Depth  int    `yaml:"depth"`

	Placement generator.PlacementConfig `yaml:"placement"`
	Routing   generator.RoutingConfig   `yaml:"routing"`
	Connector generator.ConnectorConfig `yaml:"connector"`
	Terrain   world.Palette             `yaml:"terrain"`
	Spawn     setup.SpawnConfig         `yaml:"spawn"`
}

// Default level dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

// DefaultConfig returns the configuration of the default preset
func DefaultConfig() *Config {
	cfg, _ := ForPreset(DefaultPreset)
	return cfg
}

// ForPreset returns the default configuration with the strategies of the named preset
func ForPreset(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return &Config{
		Generator: GeneratorConfig{
			Preset:    name,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Depth:     1,
			Placement: p.placement,
			Routing:   p.routing,
			Connector: p.connector,
			Terrain:   world.DefaultPalette(),
			Spawn:     setup.DefaultSpawnConfig(),
		},
		Logging: logger.DefaultConfig(),
	}, nil
}

// LoadConfig reads path on top of the selected preset's defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	return Load(path, "")
}

// Load is LoadConfig with an explicit preset taking precedence over both the
// file and DUNGEON_PRESET. An empty preset leaves the choice to them.
func Load(path, preset string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// The preset decides the defaults, so find it before decoding the rest.
	name := DefaultPreset
	if len(data) > 0 {
		var head struct {
			Generator struct {
				Preset string `yaml:"preset"`
			} `yaml:"generator"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if head.Generator.Preset != "" {
			name = head.Generator.Preset
		}
	}
	if env := os.Getenv("DUNGEON_PRESET"); env != "" {
		name = env
	}
	if preset != "" {
		name = preset
	}

	cfg, err := ForPreset(name)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		cfg.Generator.Preset = name
	}

	if env := os.Getenv("DUNGEON_SEED"); env != "" {
		seed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		cfg.Generator.Seed = seed
	}
	cfg.Logging.ApplyEnv()

	return cfg, nil
}

// LevelConfig converts the settings to a level generator config
func (g GeneratorConfig) LevelConfig() generator.Config {
	return generator.Config{
		Size:      world.Size{Width: g.Width, Height: g.Height},
		Placement: g.Placement,
		Routing:   g.Routing,
		Connector: g.Connector,
	}
}
