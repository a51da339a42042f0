package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // A, Left arrow - nudge paddle left
	ActionRight                // D, Right arrow - nudge paddle right
	ActionLaunch               // Space - release attached balls
	ActionFire                 // F, Up arrow - fire a rocket
	ActionConfirm              // Enter - confirm / continue / resume
	ActionBack                 // B, Escape in menus - go back
	ActionRestart              // R - restart after game over
	ActionQuit                 // Q, Ctrl+C - exit
	ActionPause                // P, Escape - pause/unpause
	ActionSettings             // O - open settings from the main menu
	ActionEditor               // E - open the level editor from the main menu
	ActionToggleGravity        // G - toggle gravity mode in settings
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSettings:
		return "Settings"
	case ActionEditor:
		return "Editor"
	case ActionToggleGravity:
		return "ToggleGravity"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is an absolute horizontal position as a fraction of the
	// screen width (0..1). Only meaningful when HasPointer is set.
	Pointer    float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records an absolute pointer position for this frame.
func (f *InputFrame) SetPointer(fraction float64) {
	f.Pointer = ClampF(fraction, 0, 1)
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = 0
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
