package core

import (
	"math/rand/v2"
	"time"
)

// CellSource picks cells uniformly from the playable area 1..w × 1..h.
// Tests substitute scripted sources to make apple placement predictable.
type CellSource interface {
	Cell(w, h int) Cell
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds from the wall clock when seed is zero.
func NewTimeRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRNG(seed)
}

// Cell implements CellSource.
func (r *RNG) Cell(w, h int) Cell {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Cell{X: 1 + r.r.IntN(w), Y: 1 + r.r.IntN(h)}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
