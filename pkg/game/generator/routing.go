package generator

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Validator accepts or rejects a candidate set of corridor segments
type Validator func(segments []*Corridor) bool

// Router produces the corridor segments joining two rooms.
// Returns nil when no candidate passes valid.
type Router interface {
	Route(rnd *rng.Rand, a, b *Room, valid Validator) []*Corridor
	Name() string
}

// RoutingKind selects a Router
type RoutingKind string

const (
	RoutingStraight RoutingKind = "straight"
	RoutingZShape   RoutingKind = "zshape"
	RoutingMixed    RoutingKind = "mixed"
)

// RoutingConfig holds the router tunables
type RoutingConfig struct {
	Kind           RoutingKind `yaml:"kind"`
	StraightWeight float64     `yaml:"straight_weight"`
	ZShapeWeight   float64     `yaml:"zshape_weight"`
}

const zShapeAttempts = 5

// NewRouter builds the router selected by cfg.Kind
func NewRouter(cfg RoutingConfig) (Router, error) {
	switch cfg.Kind {
	case RoutingStraight:
		return StraightRouter{}, nil
	case RoutingZShape:
		return ZShapeRouter{}, nil
	case RoutingMixed:
		if cfg.StraightWeight < 0 || cfg.ZShapeWeight < 0 || cfg.StraightWeight+cfg.ZShapeWeight <= 0 {
			return nil, fmt.Errorf("%w: router weights %.2f:%.2f", ErrInvalidConfig, cfg.StraightWeight, cfg.ZShapeWeight)
		}
		return NewMixedRouter(cfg.StraightWeight, cfg.ZShapeWeight), nil
	default:
		return nil, fmt.Errorf("%w: unknown routing %q", ErrInvalidConfig, cfg.Kind)
	}
}

// StraightRouter joins rooms that share floor rows or columns with a single segment
type StraightRouter struct{}

func (StraightRouter) Name() string {
	return string(RoutingStraight)
}

// Route tries every shared row or column in random order
func (StraightRouter) Route(rnd *rng.Rand, a, b *Room, valid Validator) []*Corridor {
	for _, corridor := range rng.Shuffled(rnd, straightCandidates(a, b)) {
		segments := []*Corridor{corridor}
		if valid(segments) {
			return segments
		}
	}
	return nil
}

func straightCandidates(a, b *Room) []*Corridor {
	var candidates []*Corridor
	if a.HorizontalSpacing(b) >= 0 {
		left, right := a, b
		if right.Rect().X < left.Rect().X {
			left, right = right, left
		}
		start := left.Rect().X2()
		for _, y := range a.VerticalOverlap(b).Values() {
			candidates = append(candidates, NewHorizontalCorridor(start, y, right.Rect().X-start))
		}
	}
	if a.VerticalSpacing(b) >= 0 {
		top, bottom := a, b
		if bottom.Rect().Y < top.Rect().Y {
			top, bottom = bottom, top
		}
		start := top.Rect().Y2()
		for _, x := range a.HorizontalOverlap(b).Values() {
			candidates = append(candidates, NewVerticalCorridor(x, start, bottom.Rect().Y-start))
		}
	}
	return candidates
}

// ZShapeRouter joins rooms with three segments bending at a random column or row
type ZShapeRouter struct{}

func (ZShapeRouter) Name() string {
	return string(RoutingZShape)
}

// Route draws up to five random Z shapes. A shape needs at least two free
// columns (or rows) between the rooms for its middle segment.
func (ZShapeRouter) Route(rnd *rng.Rand, a, b *Room, valid Validator) []*Corridor {
	var axes []world.Orientation
	if a.HorizontalSpacing(b) >= 2 {
		axes = append(axes, world.Horizontal)
	}
	if a.VerticalSpacing(b) >= 2 {
		axes = append(axes, world.Vertical)
	}
	if len(axes) == 0 {
		return nil
	}

	for attempt := 0; attempt < zShapeAttempts; attempt++ {
		var segments []*Corridor
		if rng.Choice(rnd, axes) == world.Horizontal {
			segments = horizontalZ(rnd, a, b)
		} else {
			segments = verticalZ(rnd, a, b)
		}
		if valid(segments) {
			return segments
		}
	}
	return nil
}

// horizontalZ runs east from the left room, turns at a random column and
// finishes east into the right room
func horizontalZ(rnd *rng.Rand, a, b *Room) []*Corridor {
	if b.Rect().X < a.Rect().X {
		a, b = b, a
	}
	start, end := a.Rect().X2(), b.Rect().X
	ya := rnd.Range(a.Inner().Y, a.Inner().Y2()-1)
	yb := rnd.Range(b.Inner().Y, b.Inner().Y2()-1)
	bend := rnd.Range(start+1, end-1)
	return []*Corridor{
		NewHorizontalCorridor(start, ya, bend-start),
		NewVerticalCorridor(bend, min(ya, yb), abs(ya-yb)),
		NewHorizontalCorridor(bend, yb, end-bend),
	}
}

// verticalZ runs south from the upper room, turns at a random row and
// finishes south into the lower room
func verticalZ(rnd *rng.Rand, a, b *Room) []*Corridor {
	if b.Rect().Y < a.Rect().Y {
		a, b = b, a
	}
	start, end := a.Rect().Y2(), b.Rect().Y
	xa := rnd.Range(a.Inner().X, a.Inner().X2()-1)
	xb := rnd.Range(b.Inner().X, b.Inner().X2()-1)
	bend := rnd.Range(start+1, end-1)
	return []*Corridor{
		NewVerticalCorridor(xa, start, bend-start),
		NewHorizontalCorridor(min(xa, xb), bend, abs(xa-xb)),
		NewVerticalCorridor(xb, bend, end-bend),
	}
}

// MixedRouter picks one of its routers by weight. A router that fails is
// dropped from the draw and another one is picked.
type MixedRouter struct {
	routers []Router
	weights []float64
}

// NewMixedRouter mixes straight and Z-shaped corridors
func NewMixedRouter(straightWeight, zShapeWeight float64) *MixedRouter {
	return &MixedRouter{
		routers: []Router{StraightRouter{}, ZShapeRouter{}},
		weights: []float64{straightWeight, zShapeWeight},
	}
}

func (m *MixedRouter) Name() string {
	return string(RoutingMixed)
}

func (m *MixedRouter) Route(rnd *rng.Rand, a, b *Room, valid Validator) []*Corridor {
	weights := make([]float64, len(m.weights))
	copy(weights, m.weights)
	for {
		i := rng.WeightedChoice(rnd, weights)
		if i < 0 {
			return nil
		}
		if segments := m.routers[i].Route(rnd, a, b, valid); segments != nil {
			return segments
		}
		weights[i] = 0
	}
}
