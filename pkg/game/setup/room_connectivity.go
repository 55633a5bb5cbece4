package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

var (
	ErrUnreachableRoom = errors.New("room floor not reachable")
	ErrIllegalDoor     = errors.New("door outside allowed positions")
)

// VerifyLevel audits a painted level: every room's floor must lie in the floor
// area reachable from the first room, and every door in store must stand on an
// allowed door position. store may be nil.
func VerifyLevel(level *generator.Level, floor world.Terrain, store *entities.Store) error {
	if len(level.Rooms) == 0 {
		return nil
	}

	reached := mapset.New[world.Position]()
	isFloor := func(t world.Terrain) bool { return t == floor }
	for _, pos := range level.Grid.Connected(level.Rooms[0].Center(), isFloor) {
		reached.Put(pos)
	}

	for _, room := range level.Rooms {
		for _, pos := range room.Inner().Cells() {
			if !reached.Has(pos) {
				return fmt.Errorf("%w: room %d at %v", ErrUnreachableRoom, room.Index, pos)
			}
		}
	}

	if store == nil {
		return nil
	}
	for _, door := range store.OfKind(entities.KindDoor) {
		if !isDoorAllowed(level, door.Position) {
			return fmt.Errorf("%w: %v", ErrIllegalDoor, door.Position)
		}
	}
	return nil
}
