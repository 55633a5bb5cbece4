package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// Grid is the terrain map of a level. Every cell holds a Terrain id.
type Grid struct {
	cells rl.Grid
	size  Size
}

// NewGrid creates a grid of the given size with every cell set to the zero terrain
func NewGrid(size Size) *Grid {
	return &Grid{
		cells: rl.NewGrid(size.Width, size.Height),
		size:  size,
	}
}

// Size returns the grid dimensions
func (g *Grid) Size() Size {
	return g.size
}

// Bounds returns the rectangle covering the whole grid
func (g *Grid) Bounds() Rect {
	return Rect{Size: g.size}
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < g.size.Width && p.Y >= 0 && p.Y < g.size.Height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Position) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	return p.X == 0 || p.Y == 0 || p.X == g.size.Width-1 || p.Y == g.size.Height-1
}

// At returns the terrain at p. Out of bounds positions read as the zero terrain.
func (g *Grid) At(p Position) Terrain {
	return g.cells.At(p.Point())
}

// Set changes the terrain at p. Out of bounds positions are ignored.
func (g *Grid) Set(p Position, t Terrain) {
	if !g.IsValidPosition(p) {
		return
	}
	g.cells.Set(p.Point(), t)
}

// Fill sets every cell to t
func (g *Grid) Fill(t Terrain) {
	g.cells.Fill(t)
}

// FillRect sets every cell of r that lies inside the grid to t
func (g *Grid) FillRect(r Rect, t Terrain) {
	if r.Empty() {
		return
	}
	g.cells.Slice(r.Range()).Fill(t)
}

// Count returns how many cells hold t
func (g *Grid) Count(t Terrain) int {
	count := 0
	g.ForEachCell(func(_ Position, c Terrain) {
		if c == t {
			count++
		}
	})
	return count
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, t Terrain)) {
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			p := Position{x, y}
			fn(p, g.At(p))
		}
	}
}

// Connected returns every position reachable from start through cardinal steps
// over cells accepted by passable. Returns nil if start itself is not passable.
func (g *Grid) Connected(start Position, passable func(Terrain) bool) []Position {
	if !g.IsValidPosition(start) || !passable(g.At(start)) {
		return nil
	}
	pr := paths.NewPathRange(g.Bounds().Range())
	points := pr.CCMap(&terrainPather{grid: g, passable: passable}, start.Point())
	reached := make([]Position, len(points))
	for i, p := range points {
		reached[i] = PositionOf(p)
	}
	return reached
}

// terrainPather walks cardinal neighbours that are in bounds and passable
type terrainPather struct {
	grid     *Grid
	passable func(Terrain) bool
	nbs      []gruid.Point
}

func (tp *terrainPather) Neighbors(p gruid.Point) []gruid.Point {
	tp.nbs = tp.nbs[:0]
	from := PositionOf(p)
	for _, dir := range AllDirections() {
		next := from.Add(dir.Delta())
		if tp.grid.IsValidPosition(next) && tp.passable(tp.grid.At(next)) {
			tp.nbs = append(tp.nbs, next.Point())
		}
	}
	return tp.nbs
}
