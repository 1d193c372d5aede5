package tui

import (
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
)

// opposites releases the other direction of the same paddle on a press.
var opposites = map[core.Action]core.Action{
	core.ActionLeftUp:    core.ActionLeftDown,
	core.ActionLeftDown:  core.ActionLeftUp,
	core.ActionRightUp:   core.ActionRightDown,
	core.ActionRightDown: core.ActionRightUp,
}

// HoldTracker derives held state from key events.
// Terminals report key presses and auto-repeats but never releases, so an
// action counts as held until window has passed since its last event.
type HoldTracker struct {
	window  time.Duration
	last    map[core.Action]time.Time
	pressed core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for a at now.
// The first event of a hold is also reported as a press.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !h.isHeld(a, now) {
		h.pressed.SetPressed(a)
	}
	if o, ok := opposites[a]; ok {
		delete(h.last, o)
	}
	h.last[a] = now
}

// Frame returns the input for a frame sampled at now and clears the
// pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := h.pressed
	for a := range h.last {
		if h.isHeld(a, now) {
			f.SetHeld(a)
		} else {
			delete(h.last, a)
		}
	}
	h.pressed.Clear()
	return f
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.last)
	h.pressed.Clear()
}

func (h *HoldTracker) isHeld(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.window
}
