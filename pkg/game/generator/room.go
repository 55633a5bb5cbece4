package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Room is a walled rectangle of floor.
//
// The outer rectangle holds the top and left walls. The bottom and right walls
// sit on the cells just past the outer rectangle, so two rooms placed edge to
// edge share a single wall.
type Room struct {
	Index int

	rect      world.Rect
	inner     world.Rect
	connected mapset.Set[int]
	links     []int
}

// NewRoom creates a room occupying rect
func NewRoom(index int, rect world.Rect) *Room {
	return &Room{
		Index:     index,
		rect:      rect,
		inner:     world.NewRect(rect.X+1, rect.Y+1, rect.Width-1, rect.Height-1),
		connected: mapset.New[int](),
	}
}

// Rect returns the outer rectangle
func (r *Room) Rect() world.Rect {
	return r.rect
}

// Inner returns the floor area
func (r *Room) Inner() world.Rect {
	return r.inner
}

// Walled returns the outer rectangle including the shared right and bottom walls
func (r *Room) Walled() world.Rect {
	return r.rect.Grow(1, 1)
}

// Center returns the middle floor cell
func (r *Room) Center() world.Position {
	return r.inner.Center()
}

// HorizontalOverlap returns the floor columns both rooms share
func (r *Room) HorizontalOverlap(o *Room) world.Span {
	return r.inner.Columns().Intersect(o.inner.Columns())
}

// VerticalOverlap returns the floor rows both rooms share
func (r *Room) VerticalOverlap(o *Room) world.Span {
	return r.inner.Rows().Intersect(o.inner.Rows())
}

// HorizontalSpacing returns the number of columns between the facing outer edges.
// Negative when the rooms overlap horizontally.
func (r *Room) HorizontalSpacing(o *Room) int {
	return max(o.rect.X-r.rect.X2(), r.rect.X-o.rect.X2())
}

// VerticalSpacing returns the number of rows between the facing outer edges.
// Negative when the rooms overlap vertically.
func (r *Room) VerticalSpacing(o *Room) int {
	return max(o.rect.Y-r.rect.Y2(), r.rect.Y-o.rect.Y2())
}

// Connect records a connection in both rooms
func (r *Room) Connect(o *Room) {
	if r == o || r.IsConnected(o.Index) {
		return
	}
	r.connected.Put(o.Index)
	r.links = append(r.links, o.Index)
	o.connected.Put(r.Index)
	o.links = append(o.links, r.Index)
}

// IsConnected reports whether the room has a direct connection to room index
func (r *Room) IsConnected(index int) bool {
	return r.connected.Has(index)
}

// Connections returns the indices of directly connected rooms, in connection order
func (r *Room) Connections() []int {
	return r.links
}

// IsIsolated reports whether the room has no connections yet
func (r *Room) IsIsolated() bool {
	return r.connected.Size() == 0
}

// Paint draws walls on the outer border and floor on the inner area
func (r *Room) Paint(grid *world.Grid, wall, floor world.Terrain) {
	grid.FillRect(r.Walled(), wall)
	grid.FillRect(r.inner, floor)
}
