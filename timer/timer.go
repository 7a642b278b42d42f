// Package timer provides the countdown clock used by every timed phase in
// combat: attack phases, AI state windows, telegraphs, dashes and lifetimes.
package timer

// Timer counts elapsed seconds up to a fixed duration. The zero value is a
// finished zero-length timer.
type Timer struct {
	Duration float64
	Elapsed  float64
}

// New returns a fresh timer for d seconds.
func New(d float64) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{Duration: d}
}

// Tick advances the timer by dt seconds, saturating at Duration.
// Negative deltas are ignored.
func (t *Timer) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Finished reports whether the full duration has elapsed.
func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Fraction returns elapsed/duration in [0,1]. A zero-length timer is
// always complete.
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	return f
}

// Remaining returns the seconds left before the timer finishes.
func (t Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset restarts the timer with a new duration.
func (t *Timer) Reset(d float64) {
	if d < 0 {
		d = 0
	}
	t.Duration = d
	t.Elapsed = 0
}

// ScaleRemaining multiplies the time left by f, keeping what has already
// elapsed. Duration is adjusted so Fraction stays consistent.
func (t *Timer) ScaleRemaining(f float64) {
	if f < 0 {
		f = 0
	}
	t.Duration = t.Elapsed + t.Remaining()*f
}
