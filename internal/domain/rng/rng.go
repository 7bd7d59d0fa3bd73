// Package rng defines the deterministic random capability the engine consumes.
//
// Every draw made during a tick must go through one Source so that replaying
// the same seed and inputs reproduces identical output.
package rng

import (
	"github.com/google/uuid"
)

// Source is a seeded, replayable random stream.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi]. Bounds may be given in
	// either order.
	IntRange(lo, hi int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
	// Gaussian returns a normally distributed sample.
	Gaussian(mean, stddev float64) float64
	// Chance returns true with probability p.
	Chance(p float64) bool
}

// Weighted pairs a value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntRange(0, len(items)-1)]
}

// WeightedPick returns an element chosen proportionally to its weight.
// Non-positive weights never win; if every weight is non-positive the pick
// falls back to uniform. items must not be empty.
func WeightedPick[T any](src Source, items []Weighted[T]) T {
	return items[WeightedIndex(src, items)].Value
}

// WeightedIndex is WeightedPick returning the chosen position.
func WeightedIndex[T any](src Source, items []Weighted[T]) int {
	var total float64
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return src.IntRange(0, len(items)-1)
	}
	r := src.Float64() * total
	last := 0
	for i, it := range items {
		if it.Weight <= 0 {
			continue
		}
		last = i
		if r < it.Weight {
			return i
		}
		r -= it.Weight
	}
	return last
}

// Sample returns up to n distinct elements of items in shuffled order.
// items is not modified.
func Sample[T any](src Source, items []T, n int) []T {
	cp := append([]T(nil), items...)
	src.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	if n < 0 {
		n = 0
	}
	if n > len(cp) {
		n = len(cp)
	}
	return cp[:n]
}

// NewID draws a version 4 UUID from the stream.
func NewID(src Source) string {
	id, err := uuid.NewRandomFromReader(reader{src: src})
	if err != nil {
		// reader never fails; keep the stream contract anyway
		return uuid.Nil.String()
	}
	return id.String()
}

type reader struct {
	src Source
}

func (r reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.IntRange(0, 255))
	}
	return len(p), nil
}
