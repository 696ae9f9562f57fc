package core

import "time"

// FrameClock measures the wall time elapsed between consecutive frames and
// reports it in seconds, the unit the simulations pace themselves with.
type FrameClock struct {
	now   func() time.Time
	last  time.Time
	limit time.Duration
}

// NewFrameClock returns a clock reading time.Now. Deltas larger than limit
// are clamped to it; limit <= 0 disables clamping.
func NewFrameClock(limit time.Duration) *FrameClock {
	return &FrameClock{now: time.Now, limit: limit}
}

// Tick returns the seconds elapsed since the previous call. The first call
// returns zero.
func (f *FrameClock) Tick() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	if f.limit > 0 && delta > f.limit {
		delta = f.limit
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Tick returns zero.
func (f *FrameClock) Reset() { f.last = time.Time{} }
