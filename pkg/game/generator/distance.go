package generator

import (
	"math"
	"sort"
)

// DistanceBucketSize is the number of cells per distance unit for scattered rooms
const DistanceBucketSize = 8.0

// DistanceBucket groups rooms at the same distance from a room
type DistanceBucket struct {
	Distance int
	Rooms    []int
}

// DistanceTable maps a room index to its neighbours grouped by ascending distance.
// Rooms without any other room are absent.
type DistanceTable map[int][]DistanceBucket

// DistanceMetric measures how far apart two rooms are
type DistanceMetric func(a, b *Room) int

// NewDistanceTable measures every pair of rooms. Nil entries are skipped.
func NewDistanceTable(rooms []*Room, metric DistanceMetric) DistanceTable {
	table := make(DistanceTable)
	for _, a := range rooms {
		if a == nil {
			continue
		}
		byDistance := make(map[int][]int)
		for _, b := range rooms {
			if b == nil || b == a {
				continue
			}
			d := metric(a, b)
			byDistance[d] = append(byDistance[d], b.Index)
		}
		if len(byDistance) == 0 {
			continue
		}

		buckets := make([]DistanceBucket, 0, len(byDistance))
		for d, indices := range byDistance {
			buckets = append(buckets, DistanceBucket{Distance: d, Rooms: indices})
		}
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Distance < buckets[j].Distance
		})
		table[a.Index] = buckets
	}
	return table
}

// Neighbours returns the buckets for room index, nearest first
func (t DistanceTable) Neighbours(index int) []DistanceBucket {
	return t[index]
}

// Distance returns the distance between two rooms, or false if they were not measured
func (t DistanceTable) Distance(from, to int) (int, bool) {
	for _, bucket := range t[from] {
		for _, index := range bucket.Rooms {
			if index == to {
				return bucket.Distance, true
			}
		}
	}
	return 0, false
}

// EuclideanMetric buckets the straight-line distance between room centers
func EuclideanMetric(a, b *Room) int {
	ca, cb := a.Rect().Center(), b.Rect().Center()
	dx := float64(ca.X - cb.X)
	dy := float64(ca.Y - cb.Y)
	return int(math.Hypot(dx, dy) / DistanceBucketSize)
}
