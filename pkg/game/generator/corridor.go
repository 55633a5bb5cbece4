package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Corridor is a one cell wide strip of floor.
//
// Position is the first carved cell and Length the number of cells between the
// two facing walls it joins. The carved strip is one cell longer than Length so
// it also pierces the wall at the far end.
type Corridor struct {
	Orientation world.Orientation
	Position    world.Position
	Length      int

	allowed mapset.Set[world.Position]
	doors   []world.Position
}

// NewCorridor creates a corridor starting at pos
func NewCorridor(orientation world.Orientation, pos world.Position, length int) *Corridor {
	return &Corridor{
		Orientation: orientation,
		Position:    pos,
		Length:      length,
		allowed:     mapset.New[world.Position](),
	}
}

// NewHorizontalCorridor joins column x to column x+length along row y
func NewHorizontalCorridor(x, y, length int) *Corridor {
	return NewCorridor(world.Horizontal, world.Pos(x, y), length)
}

// NewVerticalCorridor joins row y to row y+length along column x
func NewVerticalCorridor(x, y, length int) *Corridor {
	return NewCorridor(world.Vertical, world.Pos(x, y), length)
}

// Rect returns the nominal extent: Length cells from Position
func (c *Corridor) Rect() world.Rect {
	return c.strip(c.Length)
}

// Inner returns the carved extent
func (c *Corridor) Inner() world.Rect {
	return c.strip(c.Length + 1)
}

func (c *Corridor) strip(length int) world.Rect {
	if c.Orientation == world.Vertical {
		return world.Rect{Position: c.Position, Size: world.Size{Width: 1, Height: length}}
	}
	return world.Rect{Position: c.Position, Size: world.Size{Width: length, Height: 1}}
}

// Cells lists the carved cells from the start of the strip
func (c *Corridor) Cells() []world.Position {
	return c.Inner().Cells()
}

// Cell returns the carved cell at index. Negative indices count from the end.
func (c *Corridor) Cell(index int) (world.Position, bool) {
	n := c.Length + 1
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return world.Position{}, false
	}
	step := c.Orientation.Forward().Delta()
	return world.Pos(c.Position.X+step.X*index, c.Position.Y+step.Y*index), true
}

// AllowDoor marks the carved cell at index as a legal door position.
// Only the first (0) and last (-1) cells can hold doors.
func (c *Corridor) AllowDoor(index int) bool {
	if index != 0 && index != -1 {
		return false
	}
	pos, ok := c.Cell(index)
	if !ok {
		return false
	}
	if !c.allowed.Has(pos) {
		c.allowed.Put(pos)
		c.doors = append(c.doors, pos)
	}
	return true
}

// AllowedDoors returns the legal door positions in the order they were allowed
func (c *Corridor) AllowedDoors() []world.Position {
	return c.doors
}

// IsDoorAllowed reports whether a door may stand at pos
func (c *Corridor) IsDoorAllowed(pos world.Position) bool {
	return c.allowed.Has(pos)
}

// Paint carves the corridor as floor
func (c *Corridor) Paint(grid *world.Grid, floor world.Terrain) {
	grid.FillRect(c.Inner(), floor)
}
