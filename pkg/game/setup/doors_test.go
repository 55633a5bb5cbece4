package setup

import (
	"testing"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

func corridorWithDoors(x, y, length int) *generator.Corridor {
	c := generator.NewHorizontalCorridor(x, y, length)
	c.AllowDoor(0)
	c.AllowDoor(-1)
	return c
}

func TestDoorPositionsShortCorridor(t *testing.T) {
	for _, length := range []int{0, 1} {
		for seed := int64(0); seed < 10; seed++ {
			c := corridorWithDoors(5, 2, length)
			doors := DoorPositions(rng.New(seed), []*generator.Corridor{c}, 0)
			if len(doors) != 1 {
				t.Fatalf("length %d seed %d: %d doors, want 1", length, seed, len(doors))
			}
			if !c.IsDoorAllowed(doors[0]) {
				t.Errorf("length %d seed %d: door %v not allowed", length, seed, doors[0])
			}
		}
	}
}

func TestDoorPositionsLongCorridor(t *testing.T) {
	tests := []struct {
		chance float64
		want   int
	}{
		{0, 0},
		{1, 2},
	}
	for _, tt := range tests {
		c := corridorWithDoors(5, 2, 6)
		doors := DoorPositions(rng.New(1), []*generator.Corridor{c}, tt.chance)
		if len(doors) != tt.want {
			t.Errorf("chance %.1f: %d doors, want %d", tt.chance, len(doors), tt.want)
		}
		for _, d := range doors {
			if d != world.Pos(5, 2) && d != world.Pos(11, 2) {
				t.Errorf("chance %.1f: door at %v, want a corridor end", tt.chance, d)
			}
		}
	}
}

func TestDoorPositionsOnlyAllowed(t *testing.T) {
	// Middle segments of a bent corridor carry no door positions.
	bare := generator.NewVerticalCorridor(3, 3, 4)
	if doors := DoorPositions(rng.New(1), []*generator.Corridor{bare}, 1); len(doors) != 0 {
		t.Errorf("doors = %v, want none", doors)
	}

	// Two corridors ending on the same cell get one door there.
	a := corridorWithDoors(0, 0, 4)
	b := generator.NewVerticalCorridor(4, 0, 3)
	b.AllowDoor(0)
	doors := DoorPositions(rng.New(1), []*generator.Corridor{a, b}, 1)
	if len(doors) != 2 {
		t.Errorf("doors = %v, want 2 distinct positions", doors)
	}
}

func TestDoorPositionsIsDeterministic(t *testing.T) {
	corridors := []*generator.Corridor{
		corridorWithDoors(0, 0, 5),
		corridorWithDoors(0, 4, 8),
		corridorWithDoors(0, 8, 1),
	}
	first := DoorPositions(rng.New(3), corridors, 0.5)
	second := DoorPositions(rng.New(3), corridors, 0.5)
	if len(first) != len(second) {
		t.Fatalf("%v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("door %d: %v then %v", i, first[i], second[i])
		}
	}
}
