package game

import (
	"math/rand/v2"
)

// Rand is the randomness the simulation draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|7)))
}

// WeightedIndex picks an index with probability weights[i] / sum(weights).
// Weights need not be normalised. Non-positive weights are never picked.
// Returns -1 when no weight is positive.
func WeightedIndex(rng Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	// Rounding can leave r just above the final bucket.
	return last
}
