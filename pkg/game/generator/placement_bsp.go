package generator

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// BSPPlacement partitions the level with a BSP tree and puts one room in each leaf
type BSPPlacement struct {
	size     world.Size
	splitter BSPSplitter

	// tree of the most recent Place call
	tree *BSPTree
}

// NewBSPPlacement validates cfg and creates a BSP placement
func NewBSPPlacement(size world.Size, cfg PlacementConfig) (*BSPPlacement, error) {
	ratio := cfg.MinAspectRatio
	if ratio == 0 {
		ratio = DefaultMinAspectRatio
	}
	usable := usableArea(size)
	switch {
	case cfg.BSPDepth < 0:
		return nil, fmt.Errorf("%w: negative BSP depth %d", ErrInvalidConfig, cfg.BSPDepth)
	case ratio < 0 || ratio > 1:
		return nil, fmt.Errorf("%w: min aspect ratio %.2f outside [0, 1]", ErrInvalidConfig, ratio)
	case usable.Width < cfg.MinRoomSize || usable.Height < cfg.MinRoomSize:
		return nil, fmt.Errorf("%w: level %v too small for %d cell rooms", ErrInvalidConfig, size, cfg.MinRoomSize)
	}
	return &BSPPlacement{
		size: size,
		splitter: BSPSplitter{
			Depth:          cfg.BSPDepth,
			MinSize:        cfg.MinRoomSize,
			MinAspectRatio: ratio,
		},
	}, nil
}

// Name returns the name of this placement
func (p *BSPPlacement) Name() string {
	return string(PlacementBSP)
}

// Tree returns the partition built by the last Place call
func (p *BSPPlacement) Tree() *BSPTree {
	return p.tree
}

// Place splits the level and fills each leaf with a room.
// Room distance is the number of tree edges between their leaves.
func (p *BSPPlacement) Place(rnd *rng.Rand) ([]*Room, DistanceTable) {
	tree := p.splitter.Split(rnd, usableArea(p.size))
	p.tree = tree

	var rooms []*Room
	var leafOf []int
	for _, leaf := range tree.Leaves() {
		region := tree.Region(leaf)
		if region.Width < p.splitter.MinSize || region.Height < p.splitter.MinSize {
			logger.Debug("BSP leaf too small for a room", "region", region.String())
			continue
		}
		rooms = append(rooms, NewRoom(len(rooms), roomInRegion(rnd, region, p.splitter.MinSize, 3)))
		leafOf = append(leafOf, leaf)
	}

	metric := func(a, b *Room) int {
		return tree.Distance(leafOf[a.Index], leafOf[b.Index])
	}
	return rooms, NewDistanceTable(rooms, metric)
}
