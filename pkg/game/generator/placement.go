package generator

import (
	"fmt"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// RoomPlacement decides where rooms go.
// The returned slice is indexed by room index and may hold nil holes.
type RoomPlacement interface {
	Place(rnd *rng.Rand) ([]*Room, DistanceTable)
	Name() string
}

// PlacementKind selects a RoomPlacement
type PlacementKind string

const (
	PlacementScatter PlacementKind = "scatter"
	PlacementGrid    PlacementKind = "grid"
	PlacementBSP     PlacementKind = "bsp"
)

// PlacementConfig holds the tunables of every placement strategy
type PlacementConfig struct {
	Kind        PlacementKind `yaml:"kind"`
	MinRoomSize int           `yaml:"min_room_size"`
	MaxRoomSize int           `yaml:"max_room_size"`

	// scatter
	MaxRoomAreaFactor  float64 `yaml:"max_room_area_factor"`
	MinRoomsAreaFactor float64 `yaml:"min_rooms_area_factor"`
	MaxRejections      int     `yaml:"max_rejections"`

	// grid
	GridColumns int `yaml:"grid_columns"`
	GridRows    int `yaml:"grid_rows"`

	// bsp
	BSPDepth       int     `yaml:"bsp_depth"`
	MinAspectRatio float64 `yaml:"min_aspect_ratio"`
}

// Smallest outer size giving a room a 2x2 floor
const minimalRoomSize = 3

const defaultMaxRejections = 5000

// NewPlacement builds the placement strategy selected by cfg.Kind for a level of the given size
func NewPlacement(size world.Size, cfg PlacementConfig) (RoomPlacement, error) {
	if cfg.MinRoomSize < minimalRoomSize {
		return nil, fmt.Errorf("%w: min room size %d is below %d", ErrInvalidConfig, cfg.MinRoomSize, minimalRoomSize)
	}
	switch cfg.Kind {
	case PlacementScatter:
		return NewScatterPlacement(size, cfg)
	case PlacementGrid:
		return NewGridPlacement(size, cfg)
	case PlacementBSP:
		return NewBSPPlacement(size, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown placement %q", ErrInvalidConfig, cfg.Kind)
	}
}

// usableArea is the part of the level rooms can occupy: the last column and
// row are reserved for the right and bottom walls.
func usableArea(size world.Size) world.Rect {
	return world.NewRect(0, 0, size.Width-1, size.Height-1)
}

// ScatterPlacement drops randomly sized rooms at random positions,
// rejecting any that would overlap an accepted room
type ScatterPlacement struct {
	size               world.Size
	minSize, maxSize   int
	maxRoomArea        int
	minRoomsAreaFactor float64
	maxRejections      int
}

// NewScatterPlacement validates cfg and creates a scatter placement
func NewScatterPlacement(size world.Size, cfg PlacementConfig) (*ScatterPlacement, error) {
	usable := usableArea(size)
	switch {
	case cfg.MaxRoomSize < cfg.MinRoomSize:
		return nil, fmt.Errorf("%w: max room size %d below min %d", ErrInvalidConfig, cfg.MaxRoomSize, cfg.MinRoomSize)
	case usable.Width < cfg.MinRoomSize || usable.Height < cfg.MinRoomSize:
		return nil, fmt.Errorf("%w: level %v too small for %d cell rooms", ErrInvalidConfig, size, cfg.MinRoomSize)
	case cfg.MinRoomsAreaFactor < 0 || cfg.MinRoomsAreaFactor > 1:
		return nil, fmt.Errorf("%w: min rooms area factor %.2f outside [0, 1]", ErrInvalidConfig, cfg.MinRoomsAreaFactor)
	case cfg.MaxRoomAreaFactor <= 0 || cfg.MaxRoomAreaFactor > 1:
		return nil, fmt.Errorf("%w: max room area factor %.2f outside (0, 1]", ErrInvalidConfig, cfg.MaxRoomAreaFactor)
	}

	maxRejections := cfg.MaxRejections
	if maxRejections <= 0 {
		maxRejections = defaultMaxRejections
	}
	maxRoomArea := int(cfg.MaxRoomAreaFactor * float64(size.Area()))
	maxRoomArea = max(maxRoomArea, cfg.MinRoomSize*cfg.MinRoomSize)

	return &ScatterPlacement{
		size:               size,
		minSize:            cfg.MinRoomSize,
		maxSize:            cfg.MaxRoomSize,
		maxRoomArea:        maxRoomArea,
		minRoomsAreaFactor: cfg.MinRoomsAreaFactor,
		maxRejections:      maxRejections,
	}, nil
}

// Name returns the name of this placement
func (p *ScatterPlacement) Name() string {
	return string(PlacementScatter)
}

// Place scatters rooms until they cover the requested share of the level
func (p *ScatterPlacement) Place(rnd *rng.Rand) ([]*Room, DistanceTable) {
	target := int(p.minRoomsAreaFactor * float64(p.size.Area()))
	if target <= 0 {
		return nil, DistanceTable{}
	}

	usable := usableArea(p.size)
	var rooms []*Room
	area, rejections := 0, 0
	for area < target {
		width, height := p.randomSize(rnd, usable)
		rect := world.NewRect(
			rnd.Intn(usable.Width-width+1),
			rnd.Intn(usable.Height-height+1),
			width, height,
		)

		if overlapsAny(rect, rooms) {
			rejections++
			if rejections >= p.maxRejections {
				logger.Warning("scatter placement gave up",
					"rooms", len(rooms), "area", area, "target", target, "rejections", rejections)
				break
			}
			continue
		}

		rejections = 0
		rooms = append(rooms, NewRoom(len(rooms), rect))
		area += rect.Area()
	}

	logger.Debug("scatter placement done", "rooms", len(rooms), "area", area, "target", target)
	return rooms, NewDistanceTable(rooms, EuclideanMetric)
}

func (p *ScatterPlacement) randomSize(rnd *rng.Rand, usable world.Rect) (int, int) {
	width := min(rnd.Range(p.minSize, p.maxSize), usable.Width)
	height := min(rnd.Range(p.minSize, p.maxSize), usable.Height)
	for width*height > p.maxRoomArea {
		if width >= height && width > p.minSize {
			width--
		} else if height > p.minSize {
			height--
		} else {
			break
		}
	}
	return width, height
}

func overlapsAny(rect world.Rect, rooms []*Room) bool {
	for _, room := range rooms {
		if room != nil && room.Rect().Intersects(rect) {
			return true
		}
	}
	return false
}
