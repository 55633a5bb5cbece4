package generator

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
)

// Connector links placed rooms with corridors until every room is reachable
type Connector interface {
	Connect(rnd *rng.Rand, rooms []*Room, distances DistanceTable, router Router) ([]*Corridor, error)
	Name() string
}

// ConnectorKind selects a Connector
type ConnectorKind string

const (
	ConnectorRandomNearest ConnectorKind = "random-nearest"
	ConnectorFollowNearest ConnectorKind = "follow-nearest"
	ConnectorBSPSibling    ConnectorKind = "bsp-sibling"
)

// ConnectorConfig holds the connector tunables.
// Distances are in the units of the placement's distance table.
type ConnectorConfig struct {
	Kind          ConnectorKind `yaml:"kind"`
	MaxDistance   int           `yaml:"max_distance"`
	RepairRetries int           `yaml:"repair_retries"`
}

const (
	DefaultMaxConnectionDistance = 8
	DefaultRepairRetries         = 10
)

// NewConnector builds the connector selected by cfg.Kind
func NewConnector(cfg ConnectorConfig) (Connector, error) {
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("%w: negative max connection distance %d", ErrInvalidConfig, cfg.MaxDistance)
	}
	if cfg.RepairRetries < 0 {
		return nil, fmt.Errorf("%w: negative repair retries %d", ErrInvalidConfig, cfg.RepairRetries)
	}
	limits := connectorLimits{
		maxDistance: float64(cfg.MaxDistance),
		retries:     cfg.RepairRetries,
	}
	switch cfg.Kind {
	case ConnectorRandomNearest:
		return &RandomNearestConnector{limits}, nil
	case ConnectorFollowNearest:
		return &FollowNearestConnector{limits}, nil
	case ConnectorBSPSibling:
		return &BSPSiblingConnector{limits}, nil
	default:
		return nil, fmt.Errorf("%w: unknown connector %q", ErrInvalidConfig, cfg.Kind)
	}
}

type connectorLimits struct {
	maxDistance float64
	retries     int
}

// finish adds a few loops to the spanning connections and repairs whatever is
// still unreachable
func (l connectorLimits) finish(g *roomGraph) ([]*Corridor, error) {
	g.addExtraConnections(l.maxDistance)
	if err := g.repair(l.maxDistance, l.retries); err != nil {
		return g.corridors, err
	}
	return g.corridors, nil
}

// roomGraph is the working state of one Connect call
type roomGraph struct {
	rnd       *rng.Rand
	rooms     []*Room
	present   []int
	distances DistanceTable
	router    Router
	corridors []*Corridor
}

func newRoomGraph(rnd *rng.Rand, rooms []*Room, distances DistanceTable, router Router) *roomGraph {
	g := &roomGraph{
		rnd:       rnd,
		rooms:     rooms,
		distances: distances,
		router:    router,
	}
	for i, room := range rooms {
		if room != nil {
			g.present = append(g.present, i)
		}
	}
	return g
}

// connect routes a corridor between a and b and records the connection.
// Doors are allowed at the outer ends of the route only.
func (g *roomGraph) connect(a, b *Room) bool {
	if a == b || a.IsConnected(b.Index) {
		return false
	}
	segments := g.router.Route(g.rnd, a, b, g.validator(a, b))
	if len(segments) == 0 {
		return false
	}
	segments[0].AllowDoor(0)
	segments[len(segments)-1].AllowDoor(-1)
	g.corridors = append(g.corridors, segments...)
	a.Connect(b)
	return true
}

// validator rejects segments crossing any room other than a and b, or running
// into another corridor of the same orientation
func (g *roomGraph) validator(a, b *Room) Validator {
	return func(segments []*Corridor) bool {
		for i, segment := range segments {
			carved := segment.Inner()
			for _, other := range segments[i+1:] {
				if other.Orientation == segment.Orientation && other.Inner().Intersects(carved) {
					return false
				}
			}
			for _, room := range g.rooms {
				if room == nil || room == a || room == b {
					continue
				}
				if room.Walled().Intersects(carved) {
					return false
				}
			}
			for _, other := range g.corridors {
				if other.Orientation == segment.Orientation && other.Inner().Intersects(carved) {
					return false
				}
			}
		}
		return true
	}
}

// candidates lists rooms accepted by keep within limit of from, nearest first.
// Rooms at the same distance come in random order.
func (g *roomGraph) candidates(from *Room, limit float64, keep func(*Room) bool) []*Room {
	var result []*Room
	for _, bucket := range g.distances.Neighbours(from.Index) {
		if float64(bucket.Distance) > limit {
			break
		}
		var same []*Room
		for _, index := range bucket.Rooms {
			if room := g.rooms[index]; room != nil && room != from && keep(room) {
				same = append(same, room)
			}
		}
		result = append(result, rng.Shuffled(g.rnd, same)...)
	}
	return result
}

// connectNearest connects from to the nearest candidate that can be routed.
// Returns the room it connected to, or nil.
func (g *roomGraph) connectNearest(from *Room, limit float64, keep func(*Room) bool) *Room {
	for _, to := range g.candidates(from, limit, keep) {
		if g.connect(from, to) {
			return to
		}
	}
	return nil
}

func (g *roomGraph) isolated() []*Room {
	var rooms []*Room
	for _, i := range g.present {
		if g.rooms[i].IsIsolated() {
			rooms = append(rooms, g.rooms[i])
		}
	}
	return rooms
}

// reachable returns the indices of every room reachable from start
func (g *roomGraph) reachable(start int) mapset.Set[int] {
	visited := mapset.New[int]()
	pending := stack.New[int]()
	pending.Push(start)
	for pending.Size() > 0 {
		index := pending.Pop()
		if visited.Has(index) {
			continue
		}
		visited.Put(index)
		for _, next := range g.rooms[index].Connections() {
			if !visited.Has(next) {
				pending.Push(next)
			}
		}
	}
	return visited
}

// clusters splits the rooms into connected groups, ordered by their lowest index
func (g *roomGraph) clusters() [][]int {
	seen := mapset.New[int]()
	var clusters [][]int
	for _, i := range g.present {
		if seen.Has(i) {
			continue
		}
		reached := g.reachable(i)
		var cluster []int
		for _, j := range g.present {
			if reached.Has(j) {
				seen.Put(j)
				cluster = append(cluster, j)
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// addExtraConnections adds between 1 and sqrt(n) connections between rooms
// that are not directly connected yet, creating loops
func (g *roomGraph) addExtraConnections(maxDistance float64) {
	n := len(g.present)
	if n < 3 {
		return
	}
	count := g.rnd.Range(1, int(math.Sqrt(float64(n))))
	added := 0
	for i := 0; i < count; i++ {
		from := g.rooms[rng.Choice(g.rnd, g.present)]
		if g.connectNearest(from, maxDistance, func(r *Room) bool { return !from.IsConnected(r.Index) }) != nil {
			added++
		}
	}
	logger.Debug("extra connections", "requested", count, "added", added)
}

// repair connects unreachable rooms to the rooms reachable from the first one.
// Each attempt widens the distance limit.
func (g *roomGraph) repair(maxDistance float64, retries int) error {
	if len(g.present) < 2 {
		return nil
	}
	first := g.present[0]
	for attempt := 1; ; attempt++ {
		reached := g.reachable(first)
		if reached.Size() == len(g.present) {
			return nil
		}
		if attempt > retries {
			unreached := len(g.present) - reached.Size()
			logger.Error("connectivity repair failed", "unreached", unreached, "rooms", len(g.present), "attempts", retries)
			return fmt.Errorf("%w: %d of %d rooms unreachable after %d attempts",
				ErrConnectivityRepairExhausted, unreached, len(g.present), retries)
		}

		maxDistance *= 1 + 0.1*float64(attempt)
		var unreached []*Room
		for _, i := range g.present {
			if !reached.Has(i) {
				unreached = append(unreached, g.rooms[i])
			}
		}
		from := rng.Choice(g.rnd, unreached)
		to := g.connectNearest(from, maxDistance, func(r *Room) bool { return reached.Has(r.Index) })
		logger.Info("connectivity repair",
			"attempt", attempt, "room", from.Index, "joined", to != nil, "max_distance", maxDistance)
	}
}
