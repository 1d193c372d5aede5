package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation only ever sees actions; key codes stay in the platform layer.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - move left paddle up
	ActionLeftDown         // S - move left paddle down
	ActionRightUp          // Up arrow - move right paddle up
	ActionRightDown        // Down arrow - move right paddle down
	ActionServe            // Space - restart the round after a win
	ActionPause            // P - pause/unpause
	ActionQuit             // Q, Ctrl+C - exit

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionServe:
		return "Serve"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the query surface the simulation reads each frame.
type Input interface {
	// IsHeld reports whether the action is currently held down.
	IsHeld(a Action) bool
	// IsPressed reports whether the action was triggered during this frame.
	IsPressed(a Action) bool
}

// InputFrame represents the input state for one simulation frame.
// Held actions are level-triggered, pressed actions are edge-triggered.
type InputFrame struct {
	held    uint16
	pressed uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameFromBits rebuilds a frame from the bit masks returned by Bits.
func FrameFromBits(held, pressed uint16) InputFrame {
	const mask = (uint16(1)<<actionCount - 1) &^ 1
	return InputFrame{held: held & mask, pressed: pressed & mask}
}

// SetHeld marks an action as held for this frame.
func (f *InputFrame) SetHeld(a Action) {
	f.held |= bit(a)
}

// SetPressed marks an action as pressed this frame.
func (f *InputFrame) SetPressed(a Action) {
	f.pressed |= bit(a)
}

// IsHeld returns true if the given action is held.
func (f InputFrame) IsHeld(a Action) bool {
	return f.held&bit(a) != 0
}

// IsPressed returns true if the given action was pressed this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.pressed&bit(a) != 0
}

// Empty reports whether no action is held or pressed.
func (f InputFrame) Empty() bool {
	return f.held == 0 && f.pressed == 0
}

// Bits returns the held and pressed masks for compact storage.
func (f InputFrame) Bits() (held, pressed uint16) {
	return f.held, f.pressed
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.held = 0
	f.pressed = 0
}

func bit(a Action) uint16 {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}

var _ Input = InputFrame{}
