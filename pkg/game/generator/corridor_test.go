package generator

import (
	"testing"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

func TestCorridorExtent(t *testing.T) {
	h := NewHorizontalCorridor(5, 1, 5)
	if got, want := h.Rect(), world.NewRect(5, 1, 5, 1); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if got, want := h.Inner(), world.NewRect(5, 1, 6, 1); got != want {
		t.Errorf("Inner() = %v, want %v", got, want)
	}

	v := NewVerticalCorridor(3, 4, 2)
	if got, want := v.Inner(), world.NewRect(3, 4, 1, 3); got != want {
		t.Errorf("vertical Inner() = %v, want %v", got, want)
	}
	cells := v.Cells()
	if len(cells) != 3 || cells[0] != world.Pos(3, 4) || cells[2] != world.Pos(3, 6) {
		t.Errorf("vertical Cells() = %v", cells)
	}
}

func TestCorridorAllowDoor(t *testing.T) {
	c := NewHorizontalCorridor(5, 1, 5)

	for _, index := range []int{1, 3, -2, 6} {
		if c.AllowDoor(index) {
			t.Errorf("AllowDoor(%d) = true, want false", index)
		}
	}
	if len(c.AllowedDoors()) != 0 {
		t.Fatalf("AllowedDoors() = %v after rejected calls", c.AllowedDoors())
	}

	if !c.AllowDoor(0) || !c.AllowDoor(-1) {
		t.Fatal("AllowDoor(0) and AllowDoor(-1) must succeed")
	}
	want := []world.Position{world.Pos(5, 1), world.Pos(10, 1)}
	got := c.AllowedDoors()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("AllowedDoors() = %v, want %v", got, want)
	}
	if c.IsDoorAllowed(world.Pos(7, 1)) {
		t.Error("IsDoorAllowed(middle) = true, want false")
	}
}

func TestZeroLengthCorridorHasOneDoorPosition(t *testing.T) {
	c := NewVerticalCorridor(4, 6, 0)
	c.AllowDoor(0)
	c.AllowDoor(-1)
	if got := c.AllowedDoors(); len(got) != 1 || got[0] != world.Pos(4, 6) {
		t.Errorf("AllowedDoors() = %v, want [(4,6)]", got)
	}
}

func TestCorridorCell(t *testing.T) {
	c := NewHorizontalCorridor(2, 2, 3)
	tests := []struct {
		index int
		want  world.Position
		ok    bool
	}{
		{0, world.Pos(2, 2), true},
		{3, world.Pos(5, 2), true},
		{-1, world.Pos(5, 2), true},
		{-4, world.Pos(2, 2), true},
		{4, world.Position{}, false},
		{-5, world.Position{}, false},
	}
	for _, tt := range tests {
		got, ok := c.Cell(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Cell(%d) = %v, %v, want %v, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}
