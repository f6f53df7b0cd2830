package components

import "time"

// TimerMode selects what a Timer does when it reaches its duration.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed game time up to Duration. It is embedded by value in components
// and ticked by the owning system with the frame delta.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished     bool
	timesElapsed int // periods completed by the last Tick
}

// NewTimer returns a stopped-at-zero timer.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt. A repeating timer wraps and keeps the remainder, so
// completions stay on exact multiples of Duration no matter how the deltas are sliced.
// A one-shot timer clamps at Duration and stays finished.
func (t *Timer) Tick(dt time.Duration) {
	t.timesElapsed = 0
	if dt < 0 {
		dt = 0
	}

	if t.Mode == TimerOnce && t.finished {
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		t.finished = false
		return
	}

	switch t.Mode {
	case TimerRepeating:
		if t.Duration <= 0 {
			t.Elapsed = 0
			t.timesElapsed = 1
		} else {
			t.timesElapsed = int(t.Elapsed / t.Duration)
			t.Elapsed %= t.Duration
		}
	default:
		t.Elapsed = t.Duration
		t.timesElapsed = 1
	}
	t.finished = true
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool {
	return t.timesElapsed > 0
}

// Finished reports whether a one-shot timer has run out, or a repeating timer just wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining returns the time left until the next completion.
func (t *Timer) Remaining() time.Duration {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Fraction returns progress through the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesElapsed = 0
}
