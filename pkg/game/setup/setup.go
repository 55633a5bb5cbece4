// Package setup populates generated levels: doors, the player and monsters.
package setup

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

// SpawnConfig holds spawning tunables
type SpawnConfig struct {
	Monsters      int      `yaml:"monsters"`
	MonsterNames  []string `yaml:"monster_names"`
	DoorEndChance float64  `yaml:"door_end_chance"`
}

// DefaultSpawnConfig returns the spawn settings used when none are configured
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Monsters:      6,
		MonsterNames:  []string{"rat", "bat", "goblin", "kobold", "skeleton"},
		DoorEndChance: 0.5,
	}
}

// Spawner is the default level populator. It fills a Store with the entities
// of the most recently generated level.
type Spawner struct {
	store  *entities.Store
	config SpawnConfig
}

// NewSpawner validates config and creates a spawner writing into store
func NewSpawner(store *entities.Store, config SpawnConfig) (*Spawner, error) {
	if config.Monsters < 0 {
		return nil, fmt.Errorf("negative monster count %d", config.Monsters)
	}
	if config.DoorEndChance < 0 || config.DoorEndChance > 1 {
		return nil, fmt.Errorf("door end chance %.2f outside [0, 1]", config.DoorEndChance)
	}
	if len(config.MonsterNames) == 0 {
		config.MonsterNames = DefaultSpawnConfig().MonsterNames
	}
	return &Spawner{store: store, config: config}, nil
}

// Store returns the entity store the spawner writes into
func (s *Spawner) Store() *entities.Store {
	return s.store
}

// Spawn replaces the store contents with the doors, player and monsters of level
func (s *Spawner) Spawn(rnd *rng.Rand, level *generator.Level, player *entities.Entity) error {
	s.store.Clear()

	for _, pos := range DoorPositions(rnd, level.Corridors, s.config.DoorEndChance) {
		s.store.Add(entities.NewDoor(pos))
	}

	if player != nil && len(level.Rooms) > 0 {
		s.store.Add(player)
	}

	config := s.config
	config.Monsters = MonstersForDepth(config.Monsters, level.Depth)
	placed := placeMonsters(rnd, level, s.store, config)

	logger.Debug("level populated",
		"level", level.ID,
		"doors", len(s.store.OfKind(entities.KindDoor)),
		"monsters", placed)
	return nil
}

// MonstersForDepth scales the configured monster count with depth:
// one extra monster every two levels below the first.
func MonstersForDepth(base, depth int) int {
	if depth <= 1 {
		return base
	}
	return base + (depth-1)/2
}
