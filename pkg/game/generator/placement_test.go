package generator

import (
	"errors"
	"testing"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

var testPlacements = map[string]PlacementConfig{
	"scatter": {
		Kind:               PlacementScatter,
		MinRoomSize:        5,
		MaxRoomSize:        14,
		MaxRoomAreaFactor:  0.05,
		MinRoomsAreaFactor: 0.35,
	},
	"grid": {
		Kind:        PlacementGrid,
		MinRoomSize: 4,
		GridColumns: 3,
		GridRows:    3,
	},
	"bsp": {
		Kind:        PlacementBSP,
		MinRoomSize: 5,
		BSPDepth:    4,
	},
}

func TestPlacementRoomsDoNotOverlap(t *testing.T) {
	size := world.Size{Width: 80, Height: 40}
	usable := usableArea(size)

	for name, cfg := range testPlacements {
		placement, err := NewPlacement(size, cfg)
		if err != nil {
			t.Fatalf("%s: NewPlacement() error = %v", name, err)
		}
		for seed := int64(0); seed < 25; seed++ {
			rooms, distances := placement.Place(rng.New(seed))
			present := 0
			for i, a := range rooms {
				if a == nil {
					continue
				}
				present++
				if a.Index != i {
					t.Errorf("%s seed %d: room at %d has index %d", name, seed, i, a.Index)
				}
				if !usable.ContainsRect(a.Rect()) {
					t.Errorf("%s seed %d: room %v outside %v", name, seed, a.Rect(), usable)
				}
				if a.Rect().Width < cfg.MinRoomSize || a.Rect().Height < cfg.MinRoomSize {
					t.Errorf("%s seed %d: room %v below min size %d", name, seed, a.Rect(), cfg.MinRoomSize)
				}
				for _, b := range rooms[i+1:] {
					if b != nil && a.Rect().Intersects(b.Rect()) {
						t.Errorf("%s seed %d: rooms %v and %v overlap", name, seed, a.Rect(), b.Rect())
					}
				}
			}
			if present < 2 {
				t.Errorf("%s seed %d: only %d rooms placed", name, seed, present)
			}
			if len(distances) != present {
				t.Errorf("%s seed %d: distance table has %d rooms, want %d", name, seed, len(distances), present)
			}
		}
	}
}

func TestPlacementIsDeterministic(t *testing.T) {
	size := world.Size{Width: 80, Height: 40}
	for name, cfg := range testPlacements {
		placement, err := NewPlacement(size, cfg)
		if err != nil {
			t.Fatalf("%s: NewPlacement() error = %v", name, err)
		}
		first, _ := placement.Place(rng.New(42))
		second, _ := placement.Place(rng.New(42))
		if len(first) != len(second) {
			t.Fatalf("%s: %d rooms then %d rooms", name, len(first), len(second))
		}
		for i := range first {
			if (first[i] == nil) != (second[i] == nil) {
				t.Fatalf("%s: hole mismatch at %d", name, i)
			}
			if first[i] != nil && first[i].Rect() != second[i].Rect() {
				t.Errorf("%s: room %d = %v then %v", name, i, first[i].Rect(), second[i].Rect())
			}
		}
	}
}

func TestGridSingleCell(t *testing.T) {
	placement, err := NewPlacement(world.Size{Width: 10, Height: 10}, PlacementConfig{
		Kind:        PlacementGrid,
		MinRoomSize: 4,
		GridColumns: 1,
		GridRows:    1,
	})
	if err != nil {
		t.Fatalf("NewPlacement() error = %v", err)
	}

	rooms, distances := placement.Place(rng.New(7))
	if len(rooms) != 1 || rooms[0] == nil {
		t.Fatalf("rooms = %v, want a single room", rooms)
	}
	r := rooms[0].Rect()
	if r.Width < 7 || r.Height < 7 {
		t.Errorf("room = %v, want at least 7x7", r)
	}
	if len(distances) != 0 {
		t.Errorf("len(distances) = %d, want 0", len(distances))
	}
}

func TestGridKeepsHolesAndIndices(t *testing.T) {
	cfg := testPlacements["grid"]
	placement, err := NewGridPlacement(world.Size{Width: 80, Height: 40}, cfg)
	if err != nil {
		t.Fatalf("NewGridPlacement() error = %v", err)
	}

	sawHole := false
	for seed := int64(0); seed < 30; seed++ {
		rooms, distances := placement.Place(rng.New(seed))
		if len(rooms) != 9 {
			t.Fatalf("seed %d: len(rooms) = %d, want 9", seed, len(rooms))
		}
		for i, room := range rooms {
			if room == nil {
				sawHole = true
				if _, ok := distances[i]; ok {
					t.Errorf("seed %d: hole %d present in distance table", seed, i)
				}
			}
		}
		// Index 0 is cell (0,0) and index 8 is cell (2,2), four steps apart.
		if rooms[0] != nil && rooms[8] != nil {
			if d, _ := distances.Distance(0, 8); d != 4 {
				t.Errorf("seed %d: Distance(0, 8) = %d, want 4", seed, d)
			}
		}
	}
	if !sawHole {
		t.Error("no grid cell was ever discarded")
	}
}

func TestSplitEvenly(t *testing.T) {
	parts := splitEvenly(rng.New(3), 79, 3)
	total := 0
	for _, p := range parts {
		total += p
		if p != 26 && p != 27 {
			t.Errorf("part = %d, want 26 or 27", p)
		}
	}
	if total != 79 {
		t.Errorf("sum = %d, want 79", total)
	}
}

func TestScatterZeroAreaFactor(t *testing.T) {
	cfg := testPlacements["scatter"]
	cfg.MinRoomsAreaFactor = 0
	placement, err := NewPlacement(world.Size{Width: 80, Height: 40}, cfg)
	if err != nil {
		t.Fatalf("NewPlacement() error = %v", err)
	}
	rooms, distances := placement.Place(rng.New(1))
	if len(rooms) != 0 {
		t.Errorf("len(rooms) = %d, want 0", len(rooms))
	}
	if len(distances) != 0 {
		t.Errorf("len(distances) = %d, want 0", len(distances))
	}
}

func TestScatterGivesUpAfterRejections(t *testing.T) {
	// A 12x12 level cannot fit enough 9 cell rooms to cover 90% of it.
	placement, err := NewScatterPlacement(world.Size{Width: 12, Height: 12}, PlacementConfig{
		Kind:               PlacementScatter,
		MinRoomSize:        9,
		MaxRoomSize:        9,
		MaxRoomAreaFactor:  1,
		MinRoomsAreaFactor: 0.9,
		MaxRejections:      50,
	})
	if err != nil {
		t.Fatalf("NewScatterPlacement() error = %v", err)
	}
	rooms, _ := placement.Place(rng.New(1))
	if len(rooms) != 1 {
		t.Errorf("len(rooms) = %d, want 1", len(rooms))
	}
}

func TestBSPPlacementOneRoomPerLeaf(t *testing.T) {
	placement, err := NewBSPPlacement(world.Size{Width: 80, Height: 40}, testPlacements["bsp"])
	if err != nil {
		t.Fatalf("NewBSPPlacement() error = %v", err)
	}
	rooms, distances := placement.Place(rng.New(11))
	tree := placement.Tree()
	leaves := tree.Leaves()
	if len(rooms) != len(leaves) {
		t.Fatalf("len(rooms) = %d, want one per leaf (%d)", len(rooms), len(leaves))
	}
	for i, room := range rooms {
		if !tree.Region(leaves[i]).ContainsRect(room.Rect()) {
			t.Errorf("room %v outside leaf %v", room.Rect(), tree.Region(leaves[i]))
		}
	}
	for i := 1; i < len(rooms); i++ {
		want := tree.Distance(leaves[0], leaves[i])
		if got, _ := distances.Distance(0, i); got != want {
			t.Errorf("Distance(0, %d) = %d, want %d", i, got, want)
		}
	}
}

func TestNewPlacementInvalidConfig(t *testing.T) {
	size := world.Size{Width: 80, Height: 40}
	tests := []struct {
		name string
		cfg  PlacementConfig
	}{
		{"unknown kind", PlacementConfig{Kind: "maze", MinRoomSize: 4}},
		{"tiny rooms", PlacementConfig{Kind: PlacementGrid, MinRoomSize: 2, GridColumns: 3, GridRows: 3}},
		{"empty grid", PlacementConfig{Kind: PlacementGrid, MinRoomSize: 4}},
		{"grid too dense", PlacementConfig{Kind: PlacementGrid, MinRoomSize: 4, GridColumns: 30, GridRows: 3}},
		{"scatter max below min", PlacementConfig{Kind: PlacementScatter, MinRoomSize: 6, MaxRoomSize: 5, MaxRoomAreaFactor: 0.1}},
		{"scatter area factor", PlacementConfig{Kind: PlacementScatter, MinRoomSize: 4, MaxRoomSize: 8, MaxRoomAreaFactor: 0.1, MinRoomsAreaFactor: 1.5}},
		{"scatter room factor", PlacementConfig{Kind: PlacementScatter, MinRoomSize: 4, MaxRoomSize: 8}},
		{"bsp depth", PlacementConfig{Kind: PlacementBSP, MinRoomSize: 4, BSPDepth: -1}},
		{"bsp ratio", PlacementConfig{Kind: PlacementBSP, MinRoomSize: 4, BSPDepth: 3, MinAspectRatio: 2}},
		{"bsp room too big", PlacementConfig{Kind: PlacementBSP, MinRoomSize: 50, BSPDepth: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlacement(size, tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewPlacement() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
