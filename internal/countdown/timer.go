// Package countdown holds the activity progression state machine: a
// one-second countdown timer and a controller that walks a schedule's
// pending items. The timer expiring only notifies; it never advances the
// schedule by itself.
package countdown

import "fmt"

type TimerState int

const (
	TimerStopped TimerState = iota
	TimerRunning
	TimerPaused
)

// Zone is the display color band for the remaining time.
type Zone int

const (
	ZoneGreen Zone = iota
	ZoneYellow
	ZoneRed
)

// Timer counts down in whole seconds. It carries no clock of its own; the
// owner calls Tick once per second, so pausing simply stops the ticks and
// no drift correction is attempted.
type Timer struct {
	state     TimerState
	total     int // seconds
	remaining int
}

// Start begins a fresh countdown for the given number of minutes.
func (t *Timer) Start(minutes int) {
	t.total = minutes * 60
	t.remaining = t.total
	t.state = TimerRunning
}

// Stop halts the countdown without finishing it.
func (t *Timer) Stop() {
	t.state = TimerStopped
}

// Reset clears the countdown entirely, dropping the previous total and
// remaining values along with the state.
func (t *Timer) Reset() {
	*t = Timer{}
}

// Pause suspends a running countdown.
func (t *Timer) Pause() {
	if t.state == TimerRunning {
		t.state = TimerPaused
	}
}

// Resume continues a paused countdown.
func (t *Timer) Resume() {
	if t.state == TimerPaused {
		t.state = TimerRunning
	}
}

// Toggle flips between running and paused.
func (t *Timer) Toggle() {
	switch t.state {
	case TimerRunning:
		t.state = TimerPaused
	case TimerPaused:
		t.state = TimerRunning
	}
}

// Tick advances the countdown by one second and reports whether it just
// finished. Reaching zero stops the timer, so the finished signal fires
// exactly once per Start.
func (t *Timer) Tick() bool {
	if t.state != TimerRunning {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = TimerStopped
		return true
	}
	return false
}

func (t *Timer) State() TimerState { return t.state }
func (t *Timer) Remaining() int    { return t.remaining }
func (t *Timer) Total() int        { return t.total }

// Fraction returns the remaining share of the countdown, in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.total <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.total)
}

// Zone maps the remaining fraction to a color band: green above half,
// yellow above a fifth, red below.
func (t *Timer) Zone() Zone {
	f := t.Fraction()
	switch {
	case f > 0.5:
		return ZoneGreen
	case f > 0.2:
		return ZoneYellow
	default:
		return ZoneRed
	}
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}
