// Package generator builds dungeon levels: rooms placed on a grid, joined by
// corridors into a single reachable area, reproducible from a seed.
package generator

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
)

// Config selects and tunes the strategies used for every level
type Config struct {
	Size      world.Size      `yaml:"size"`
	Placement PlacementConfig `yaml:"placement"`
	Routing   RoutingConfig   `yaml:"routing"`
	Connector ConnectorConfig `yaml:"connector"`
}

// TerrainLookup resolves terrain names such as "wall" and "floor" to ids
type TerrainLookup interface {
	Terrain(name string) (world.Terrain, error)
}

// Spawner populates a level after its terrain is painted.
// Doors may only be placed at positions the level's corridors allow.
type Spawner interface {
	Spawn(rnd *rng.Rand, level *Level, player *entities.Entity) error
}

// Level is a generated dungeon level
type Level struct {
	ID        int64
	Depth     int
	Grid      *world.Grid
	Rooms     []*Room
	Corridors []*Corridor
}

// Size returns the level dimensions
func (l *Level) Size() world.Size {
	return l.Grid.Size()
}

// LevelGenerator produces levels from one seed. Each level draws its own id
// from the generator, so the n-th level of a seed is always the same.
type LevelGenerator struct {
	config    Config
	rnd       *rng.Rand
	placement RoomPlacement
	router    Router
	connector Connector
	spawner   Spawner

	wall  world.Terrain
	floor world.Terrain
}

// New validates cfg and creates a level generator. spawner may be nil.
func New(seed int64, cfg Config, terrain TerrainLookup, spawner Spawner) (*LevelGenerator, error) {
	if cfg.Size.Width < 2 || cfg.Size.Height < 2 {
		return nil, fmt.Errorf("%w: level size %v", ErrInvalidConfig, cfg.Size)
	}
	placement, err := NewPlacement(cfg.Size, cfg.Placement)
	if err != nil {
		return nil, err
	}
	router, err := NewRouter(cfg.Routing)
	if err != nil {
		return nil, err
	}
	connector, err := NewConnector(cfg.Connector)
	if err != nil {
		return nil, err
	}
	wall, err := terrain.Terrain(world.TerrainWall)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	floor, err := terrain.Terrain(world.TerrainFloor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &LevelGenerator{
		config:    cfg,
		rnd:       rng.New(seed),
		placement: placement,
		router:    router,
		connector: connector,
		spawner:   spawner,
		wall:      wall,
		floor:     floor,
	}, nil
}

// Name describes the strategies in use
func (g *LevelGenerator) Name() string {
	return fmt.Sprintf("%s/%s/%s", g.placement.Name(), g.connector.Name(), g.router.Name())
}

// Generate creates the next level
func (g *LevelGenerator) Generate(depth int, player *entities.Entity) (*Level, error) {
	return g.GenerateWithID(g.rnd.Int63(), depth, player)
}

// GenerateWithID recreates the level identified by id.
// player, if not nil, is moved to the center of the first room.
func (g *LevelGenerator) GenerateWithID(id int64, depth int, player *entities.Entity) (*Level, error) {
	rnd := rng.New(id)
	logger.Debug("generating level", "id", id, "depth", depth, "size", g.config.Size.String(), "strategy", g.Name())

	grid := world.NewGrid(g.config.Size)
	grid.Fill(g.wall)

	rooms, distances := g.placement.Place(rnd)
	corridors, err := g.connector.Connect(rnd, rooms, distances, g.router)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}

	var placed []*Room
	for _, room := range rooms {
		if room == nil {
			continue
		}
		room.Paint(grid, g.wall, g.floor)
		placed = append(placed, room)
	}
	for _, corridor := range corridors {
		corridor.Paint(grid, g.floor)
	}

	level := &Level{
		ID:        id,
		Depth:     depth,
		Grid:      grid,
		Rooms:     placed,
		Corridors: corridors,
	}

	if player != nil && len(placed) > 0 {
		player.Position = placed[0].Center()
	}
	if g.spawner != nil {
		if err := g.spawner.Spawn(rnd, level, player); err != nil {
			return nil, fmt.Errorf("level %d: spawning: %w", id, err)
		}
	}

	logger.Info("level generated", "id", id, "depth", depth, "rooms", len(placed), "corridors", len(corridors))
	return level, nil
}
