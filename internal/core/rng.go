package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Centered returns a value in [-span/2, span/2).
func (r *RNG) Centered(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}

// Between returns a value in [lo, hi).
func (r *RNG) Between(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Roll returns a uniform integer in [1, faces]. Non-positive face counts yield 0.
func (r *RNG) Roll(faces int) int {
	if faces <= 0 {
		return 0
	}
	return r.r.IntN(faces) + 1
}
