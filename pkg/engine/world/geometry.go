package world

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// Position is a cell coordinate; X grows east, Y grows south
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by o
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Point converts the position to a gruid point
func (p Position) Point() gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

// PositionOf converts a gruid point back to a Position
func PositionOf(p gruid.Point) Position {
	return Position{X: p.X, Y: p.Y}
}

// Size is a width and height in cells
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Area returns Width*Height
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is a half-open rectangle: it covers columns [X, X+Width) and rows [Y, Y+Height)
type Rect struct {
	Position
	Size
}

// NewRect builds a rectangle from its top-left corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{Position{x, y}, Size{width, height}}
}

// X2 returns the first column past the rectangle
func (r Rect) X2() int {
	return r.X + r.Width
}

// Y2 returns the first row past the rectangle
func (r Rect) Y2() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Columns returns the span of columns covered by the rectangle
func (r Rect) Columns() Span {
	return Span{r.X, r.X2()}
}

// Rows returns the span of rows covered by the rectangle
func (r Rect) Rows() Span {
	return Span{r.Y, r.Y2()}
}

// Center returns the middle cell, rounding towards the top-left
func (r Rect) Center() Position {
	return Position{r.X + (r.Width-1)/2, r.Y + (r.Height-1)/2}
}

// Contains reports whether p lies within the rectangle
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// ContainsRect reports whether o lies entirely within r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X2() <= r.X2() && o.Y2() <= r.Y2()
}

// Intersects reports whether the two rectangles share at least one cell.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X2() && o.X < r.X2() && r.Y < o.Y2() && o.Y < r.Y2()
}

// Grow extends the rectangle by dx columns to the right and dy rows down
func (r Rect) Grow(dx, dy int) Rect {
	return Rect{r.Position, Size{r.Width + dx, r.Height + dy}}
}

// Range converts the rectangle to a gruid range
func (r Rect) Range() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X2(), r.Y2())
}

// Cells returns every position in the rectangle in row-major order
func (r Rect) Cells() []Position {
	if r.Empty() {
		return nil
	}
	cells := make([]Position, 0, r.Area())
	for y := r.Y; y < r.Y2(); y++ {
		for x := r.X; x < r.X2(); x++ {
			cells = append(cells, Position{x, y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Position, r.Size)
}

// Span is a half-open integer range [Start, End)
type Span struct {
	Start int
	End   int
}

// Len returns the number of values in the span, never negative
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the span holds no values
func (s Span) Empty() bool {
	return s.Len() == 0
}

// Intersect returns the values common to both spans
func (s Span) Intersect(o Span) Span {
	return Span{max(s.Start, o.Start), min(s.End, o.End)}
}

// Values lists every value in the span in ascending order
func (s Span) Values() []int {
	values := make([]int, 0, s.Len())
	for v := s.Start; v < s.End; v++ {
		values = append(values, v)
	}
	return values
}
