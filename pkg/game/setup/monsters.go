package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

const monsterPlacementAttempts = 10

// placeMonsters scatters monsters over the floor of every room but the
// player's. Returns how many were placed.
func placeMonsters(rnd *rng.Rand, level *generator.Level, store *entities.Store, config SpawnConfig) int {
	rooms := level.Rooms
	if len(rooms) > 1 {
		rooms = rooms[1:]
	}
	if len(rooms) == 0 {
		return 0
	}

	placed := 0
	for i := 0; i < config.Monsters; i++ {
		for attempt := 0; attempt < monsterPlacementAttempts; attempt++ {
			room := rng.Choice(rnd, rooms)
			pos := rng.Choice(rnd, room.Inner().Cells())
			if store.IsBlocked(pos) || !roomStillConnectedIfBlock(room, store, pos) {
				continue
			}
			store.Add(entities.NewMonster(rng.Choice(rnd, config.MonsterNames), pos))
			placed++
			break
		}
	}
	return placed
}

// roomStillConnectedIfBlock returns true if, after treating candidate as
// impassable in addition to cells already blocked by entities, every free
// floor cell of room can still reach every other one
func roomStillConnectedIfBlock(room *generator.Room, store *entities.Store, candidate world.Position) bool {
	inner := room.Inner()
	free := mapset.New[world.Position]()
	var start world.Position
	for _, pos := range inner.Cells() {
		if pos == candidate || store.IsBlocked(pos) {
			continue
		}
		if free.Size() == 0 {
			start = pos
		}
		free.Put(pos)
	}
	if free.Size() == 0 {
		return false
	}

	visited := mapset.New[world.Position]()
	pending := stack.New[world.Position]()
	pending.Push(start)
	for pending.Size() > 0 {
		current := pending.Pop()
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, dir := range world.AllDirections() {
			next := current.Add(dir.Delta())
			if free.Has(next) && !visited.Has(next) {
				pending.Push(next)
			}
		}
	}
	return visited.Size() == free.Size()
}
