package generator

import (
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
)

// RandomNearestConnector visits rooms in random order and links each to its
// nearest unconnected room, widening the search radius every pass
type RandomNearestConnector struct {
	connectorLimits
}

func (c *RandomNearestConnector) Name() string {
	return string(ConnectorRandomNearest)
}

func (c *RandomNearestConnector) Connect(rnd *rng.Rand, rooms []*Room, distances DistanceTable, router Router) ([]*Corridor, error) {
	g := newRoomGraph(rnd, rooms, distances, router)
	isIsolated := func(r *Room) bool { return r.IsIsolated() }

	limit := min(1, c.maxDistance)
	for {
		for _, i := range rng.Shuffled(rnd, g.present) {
			g.connectNearest(g.rooms[i], limit, isIsolated)
		}
		if len(g.isolated()) == 0 || limit >= c.maxDistance {
			break
		}
		limit = min(limit*2, c.maxDistance)
	}

	// Anything still alone gets a second chance with a relaxed limit.
	for _, room := range rng.Shuffled(rnd, g.isolated()) {
		g.connectNearest(room, 2*c.maxDistance, func(r *Room) bool { return !r.IsIsolated() })
	}

	return c.finish(g)
}

// FollowNearestConnector walks from a random room to its nearest isolated
// room, then on from there, like the classic Rogue corridor digger
type FollowNearestConnector struct {
	connectorLimits
}

func (c *FollowNearestConnector) Name() string {
	return string(ConnectorFollowNearest)
}

func (c *FollowNearestConnector) Connect(rnd *rng.Rand, rooms []*Room, distances DistanceTable, router Router) ([]*Corridor, error) {
	g := newRoomGraph(rnd, rooms, distances, router)
	if len(g.present) == 0 {
		return nil, nil
	}

	cursor := g.rooms[rng.Choice(rnd, g.present)]
	for {
		next := g.connectNearest(cursor, c.maxDistance, func(r *Room) bool { return r.IsIsolated() })
		if next == nil {
			break
		}
		cursor = next
	}

	for _, room := range rng.Shuffled(rnd, g.isolated()) {
		if !room.IsIsolated() {
			continue
		}
		g.connectNearest(room, c.maxDistance, func(r *Room) bool { return !r.IsIsolated() })
	}

	return c.finish(g)
}
