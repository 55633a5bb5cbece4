package generator

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Chance of discarding the first grid cell; halved after every discard
const gridDiscardChance = 0.6

// Grids are never thinned below this many rooms
const gridMinRooms = 2

// GridPlacement splits the level into Columns x Rows near-equal cells with one
// room per cell, Rogue style, then randomly leaves a few cells empty
type GridPlacement struct {
	size    world.Size
	columns int
	rows    int
	minSize int
}

// NewGridPlacement validates cfg and creates a grid placement
func NewGridPlacement(size world.Size, cfg PlacementConfig) (*GridPlacement, error) {
	if cfg.GridColumns < 1 || cfg.GridRows < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d needs at least one cell", ErrInvalidConfig, cfg.GridColumns, cfg.GridRows)
	}
	usable := usableArea(size)
	if usable.Width/cfg.GridColumns < cfg.MinRoomSize || usable.Height/cfg.GridRows < cfg.MinRoomSize {
		return nil, fmt.Errorf("%w: level %v too small for a %dx%d grid of %d cell rooms",
			ErrInvalidConfig, size, cfg.GridColumns, cfg.GridRows, cfg.MinRoomSize)
	}
	return &GridPlacement{
		size:    size,
		columns: cfg.GridColumns,
		rows:    cfg.GridRows,
		minSize: cfg.MinRoomSize,
	}, nil
}

// Name returns the name of this placement
func (p *GridPlacement) Name() string {
	return string(PlacementGrid)
}

// Place puts one room in each grid cell, then discards some of them.
// Discarded cells stay in the result as nil so indices keep matching grid cells.
func (p *GridPlacement) Place(rnd *rng.Rand) ([]*Room, DistanceTable) {
	usable := usableArea(p.size)
	widths := splitEvenly(rnd, usable.Width, p.columns)
	heights := splitEvenly(rnd, usable.Height, p.rows)

	rooms := make([]*Room, p.columns*p.rows)
	cells := make([]world.Position, len(rooms))
	y := usable.Y
	for row, height := range heights {
		x := usable.X
		for col, width := range widths {
			index := row*p.columns + col
			cell := world.NewRect(x, y, width, height)
			rooms[index] = NewRoom(index, roomInRegion(rnd, cell, p.minSize, 4))
			cells[index] = world.Pos(col, row)
			x += width
		}
		y += height
	}

	p.discard(rnd, rooms)

	metric := func(a, b *Room) int {
		ca, cb := cells[a.Index], cells[b.Index]
		return abs(ca.X-cb.X) + abs(ca.Y-cb.Y)
	}
	return rooms, NewDistanceTable(rooms, metric)
}

func (p *GridPlacement) discard(rnd *rng.Rand, rooms []*Room) {
	remaining := len(rooms)
	chance := gridDiscardChance
	for remaining > gridMinRooms && rnd.Chance(chance) {
		var present []int
		for i, room := range rooms {
			if room != nil {
				present = append(present, i)
			}
		}
		index := rng.Choice(rnd, present)
		rooms[index] = nil
		remaining--
		chance /= 2
		logger.Debug("grid cell discarded", "index", index)
	}
}

// splitEvenly divides total into n parts differing by at most one.
// The parts receiving the remainder are drawn at random.
func splitEvenly(rnd *rng.Rand, total, n int) []int {
	parts := make([]int, n)
	indices := make([]int, n)
	for i := range parts {
		parts[i] = total / n
		indices[i] = i
	}
	for _, i := range rng.Sample(rnd, indices, total%n) {
		parts[i]++
	}
	return parts
}

// roomInRegion draws a room inside region. Each side takes at least
// (slack-1)/slack of the region, and never less than minSize.
func roomInRegion(rnd *rng.Rand, region world.Rect, minSize, slack int) world.Rect {
	width := rnd.Range(max(minSize, region.Width-region.Width/slack), region.Width)
	height := rnd.Range(max(minSize, region.Height-region.Height/slack), region.Height)
	return world.NewRect(
		region.X+rnd.Intn(region.Width-width+1),
		region.Y+rnd.Intn(region.Height-height+1),
		width, height,
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
