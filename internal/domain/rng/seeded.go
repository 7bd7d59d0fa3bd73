package rng

import (
	"math/rand"
)

// Seeded is a math/rand backed Source.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a Source replaying the stream for seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic seed for replayable simulation
}

// IntRange returns a uniform integer in [lo, hi].
func (s *Seeded) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (s *Seeded) Float64() float64 { return s.r.Float64() }

// Shuffle permutes n elements through swap.
func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	s.r.Shuffle(n, swap)
}

// Gaussian returns a normally distributed sample.
func (s *Seeded) Gaussian(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}

// Chance returns true with probability p.
func (s *Seeded) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}
