// Package dice provides the random number source used by dungeon generation.
package dice

import (
	"math/rand"
	"time"
)

// Roller is a uniform random source with dice-style helpers.
type Roller interface {
	// RollDice rolls n dice with the given number of sides and returns the sum.
	// Each die yields a value in [1, sides].
	RollDice(n, sides int) int
	// Range returns an integer in [lo, hi).
	Range(lo, hi int) int
}

// RNG is a Roller backed by math/rand.
type RNG struct {
	rng *rand.Rand
}

// New wraps an existing *rand.Rand.
func New(rng *rand.Rand) *RNG {
	return &RNG{rng: rng}
}

// NewSeeded creates an RNG from a seed. A seed of 0 uses the current time.
func NewSeeded(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewSource(seed)))
}

// RollDice rolls n dice of the given size. Non-positive n or sides yield 0.
func (r *RNG) RollDice(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + r.rng.Intn(sides)
	}
	return total
}

// Range returns an integer in [lo, hi). An empty range returns lo.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// Intn exposes the underlying source for callers that need a plain index,
// such as weighted spawn tables.
func (r *RNG) Intn(n int) int {
	return r.rng.Intn(n)
}
