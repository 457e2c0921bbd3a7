// Package clock provides the render clock handed to every per-frame update.
package clock

import "time"

// Clock is one frame's view of time: total elapsed time since the render
// loop started and the delta since the previous frame.
type Clock struct {
	Elapsed time.Duration
	Delta   time.Duration
}

// T returns elapsed time in seconds.
func (c Clock) T() float32 {
	return float32(c.Elapsed.Seconds())
}

// DT returns the frame delta in seconds.
func (c Clock) DT() float32 {
	return float32(c.Delta.Seconds())
}

// Source produces one Clock per frame.
type Source interface {
	Tick() Clock
}

// Wall is a Source backed by the monotonic system clock.
type Wall struct {
	start time.Time
	last  time.Time
	now   func() time.Time
}

// NewWall starts a wall clock at the current instant.
func NewWall() *Wall {
	return newWall(time.Now)
}

func newWall(now func() time.Time) *Wall {
	t := now()
	return &Wall{start: t, last: t, now: now}
}

// Tick samples the system clock.
func (w *Wall) Tick() Clock {
	t := w.now()
	c := Clock{Elapsed: t.Sub(w.start), Delta: t.Sub(w.last)}
	w.last = t
	return c
}

// Manual is a virtual clock advanced explicitly, for tests and the headless
// runner.
type Manual struct {
	elapsed time.Duration
	pending time.Duration
}

// NewManual creates a virtual clock at t=0.
func NewManual() *Manual {
	return &Manual{}
}

// Advance moves virtual time forward; the next Tick reports it as delta.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.pending += d
}

// Tick consumes pending time.
func (m *Manual) Tick() Clock {
	m.elapsed += m.pending
	c := Clock{Elapsed: m.elapsed, Delta: m.pending}
	m.pending = 0
	return c
}

// Step advances by d and ticks in one call.
func (m *Manual) Step(d time.Duration) Clock {
	m.Advance(d)
	return m.Tick()
}

// Now returns the current virtual time without consuming pending time.
func (m *Manual) Now() time.Duration {
	return m.elapsed
}
