package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
)

// BSPSiblingConnector grows the largest cluster of connected rooms one room at
// a time. With tree distances this joins BSP siblings first, then cousins.
type BSPSiblingConnector struct {
	connectorLimits
}

func (c *BSPSiblingConnector) Name() string {
	return string(ConnectorBSPSibling)
}

func (c *BSPSiblingConnector) Connect(rnd *rng.Rand, rooms []*Room, distances DistanceTable, router Router) ([]*Corridor, error) {
	g := newRoomGraph(rnd, rooms, distances, router)

	limit := min(1, c.maxDistance)
	for {
		clusters := g.clusters()
		if len(clusters) <= 1 {
			break
		}
		largest := clusters[0]
		for _, cluster := range clusters[1:] {
			if len(cluster) > len(largest) {
				largest = cluster
			}
		}

		inside := mapset.New[int]()
		for _, i := range largest {
			inside.Put(i)
		}
		outside := func(r *Room) bool { return !inside.Has(r.Index) }

		joined := false
		for _, i := range rng.Shuffled(rnd, largest) {
			if g.connectNearest(g.rooms[i], limit, outside) != nil {
				joined = true
				break
			}
		}
		if joined {
			continue
		}
		if limit >= c.maxDistance {
			break
		}
		limit = min(limit*2, c.maxDistance)
	}

	return c.finish(g)
}
