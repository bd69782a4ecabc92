package visibility

import (
	"time"

	"github.com/mediabar/mediabar/clock"
)

type clickState int

const (
	clickIdle clickState = iota
	clickArmed
)

// ClickTracker tells a single click from a double click while still acting on the first click immediately.
type ClickTracker struct {
	clock  clock.Clock
	window time.Duration
	state  clickState
	reset  clock.Timer
	closed bool
}

// NewClickTracker returns an idle tracker using the given double-click window.
func NewClickTracker(c clock.Clock, window time.Duration) *ClickTracker {
	return &ClickTracker{
		clock:  c,
		window: window,
	}
}

// Register records a click. onSingle runs for every click; onDouble runs only for the second click of a pair.
// Either callback may be nil.
func (t *ClickTracker) Register(onSingle, onDouble func()) {
	if t.closed {
		return
	}

	if onSingle != nil {
		onSingle()
	}

	if t.state == clickArmed {
		t.disarm()
		if onDouble != nil {
			onDouble()
		}
		return
	}

	t.state = clickArmed
	t.reset = t.clock.AfterFunc(t.window, func() {
		if t.closed {
			return
		}
		t.state = clickIdle
		t.reset = nil
	})
}

// Armed reports whether a first click is waiting for its pair.
func (t *ClickTracker) Armed() bool {
	return t.state == clickArmed
}

// Close cancels the pending reset. Later clicks are ignored.
func (t *ClickTracker) Close() {
	t.disarm()
	t.closed = true
}

func (t *ClickTracker) disarm() {
	if t.reset != nil {
		t.reset.Stop()
		t.reset = nil
	}
	t.state = clickIdle
}
