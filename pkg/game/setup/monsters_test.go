package setup

import (
	"testing"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

func TestRoomStillConnectedIfBlock(t *testing.T) {
	// Inner floor is a single row of three cells.
	strip := generator.NewRoom(0, world.NewRect(0, 0, 4, 2))
	// Inner floor is 3x3.
	square := generator.NewRoom(1, world.NewRect(0, 0, 4, 4))

	tests := []struct {
		name      string
		room      *generator.Room
		blocked   []world.Position
		candidate world.Position
		want      bool
	}{
		{"strip end", strip, nil, world.Pos(1, 1), true},
		{"strip middle", strip, nil, world.Pos(2, 1), false},
		{"square center", square, nil, world.Pos(2, 2), true},
		{"square corner after center", square, []world.Position{world.Pos(2, 2)}, world.Pos(1, 1), true},
		{"square splits in two", square, []world.Position{world.Pos(2, 1), world.Pos(2, 2)}, world.Pos(2, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := entities.NewStore()
			for _, pos := range tt.blocked {
				store.Add(entities.NewMonster("rat", pos))
			}
			if got := roomStillConnectedIfBlock(tt.room, store, tt.candidate); got != tt.want {
				t.Errorf("roomStillConnectedIfBlock(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestRoomStillConnectedIgnoresOpenDoors(t *testing.T) {
	strip := generator.NewRoom(0, world.NewRect(0, 0, 4, 2))
	store := entities.NewStore()
	door := store.Add(entities.NewDoor(world.Pos(2, 1)))
	door.Open()

	if !roomStillConnectedIfBlock(strip, store, world.Pos(1, 1)) {
		t.Error("an open door should not block the room")
	}
}

func TestMonstersForDepth(t *testing.T) {
	tests := []struct {
		base, depth, want int
	}{
		{6, 0, 6},
		{6, 1, 6},
		{6, 2, 6},
		{6, 3, 7},
		{6, 9, 10},
		{0, 5, 2},
	}
	for _, tt := range tests {
		if got := MonstersForDepth(tt.base, tt.depth); got != tt.want {
			t.Errorf("MonstersForDepth(%d, %d) = %d, want %d", tt.base, tt.depth, got, tt.want)
		}
	}
}
