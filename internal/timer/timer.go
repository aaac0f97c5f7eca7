// Package timer provides a frame-stepped countdown driven by explicit
// elapsed-time values instead of the wall clock.
package timer

import "time"

// Mode selects whether a timer stops or restarts when it reaches its duration.
type Mode int

const (
	// Once timers finish a single time and then stay finished.
	Once Mode = iota
	// Repeating timers restart on completion, carrying any overshoot.
	Repeating
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Timer counts elapsed time toward a fixed duration.
// The zero value is a finished Once timer with no duration.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         Mode
	finished     bool
	justFinished bool
}

// New creates a timer that finishes after d.
func New(d time.Duration, mode Mode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt. JustFinished reports whether this call
// crossed the duration.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}

	if t.mode == Once {
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
		}
		return
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.justFinished = true
		t.finished = true
		if t.duration > 0 {
			t.elapsed %= t.duration
		} else {
			t.elapsed = 0
		}
		return
	}
	t.finished = false
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether the timer has completed. Repeating timers report
// true only on the tick they wrap.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns time accumulated toward the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns time left in the current period.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns the completed share of the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Mode returns the timer mode.
func (t *Timer) Mode() Mode {
	return t.mode
}
