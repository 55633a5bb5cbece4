// Package rng provides the seeded random source that drives level generation.
// Every generation step draws from a *Rand passed in explicitly, so the same
// seed always reproduces the same level.
package rng

import (
	"math/rand"
)

// Rand is a deterministic pseudo-random source
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New creates a random source seeded with seed
func New(seed int64) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this source was created with
func (r *Rand) Seed() int64 {
	return r.seed
}

// Int63 returns a non-negative pseudo-random 63-bit integer
func (r *Rand) Int63() int64 {
	return r.r.Int63()
}

// Derive draws a fresh seed and returns a new source built from it.
// The parent advances by exactly one draw regardless of how much the child is used.
func (r *Rand) Derive() (int64, *Rand) {
	seed := r.r.Int63()
	return seed, New(seed)
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Range returns a value in [lo, hi] (both inclusive). Returns lo when hi < lo.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Float64 returns a value in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Bool returns true or false with equal probability
func (r *Rand) Bool() bool {
	return r.r.Intn(2) == 0
}

// Perm returns a random permutation of [0, n)
func (r *Rand) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	return r.r.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using swap
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.r.Shuffle(n, swap)
}

// Choice returns a random element of items. Returns the zero value for an empty slice.
func Choice[T any](r *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// Shuffled returns a shuffled copy of items
func Shuffled[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sample returns k distinct elements of items (sampling without replacement).
// The result keeps the draw order. k is clamped to len(items).
func Sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)
	// Partial Fisher-Yates: only the first k slots are drawn.
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// WeightedChoice returns the index of a randomly chosen weight, with probability
// proportional to its value. Non-positive weights are never chosen.
// Returns -1 if no weight is positive.
func WeightedChoice(r *Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	target := r.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if target < w {
			return i
		}
		target -= w
	}
	// Floating point leftovers land on the last positive weight.
	return last
}
