package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Positions draws count positions uniformly over an n×n grid, with replacement.
func (r *RNG) Positions(n, count int) []Position {
	out := make([]Position, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, Position{X: r.IntN(n), Y: r.IntN(n)})
	}
	return out
}
