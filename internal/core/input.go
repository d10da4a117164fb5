package core

// Action is a semantic input intent, decoupled from physical keys.
type Action int

const (
	ActionNone            Action = iota
	ActionLeft                   // Shift the active piece one column left
	ActionRight                  // Shift the active piece one column right
	ActionRotateCW               // Rotate clockwise
	ActionRotateCCW              // Rotate anticlockwise
	ActionSoftDrop               // Soft drop on (or refresh while held)
	ActionSoftDropRelease        // Soft drop off, for hosts that see key releases
	ActionPause                  // Toggle pause
	ActionRestart                // Start a new session after game over
	ActionQuit                   // Leave the game
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionSoftDropRelease:
		return "SoftDropRelease"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input of one simulation tick.
//
// Actions holds edge-triggered presses. Held holds level-triggered state for
// hosts that can observe key releases (replays, scripted input); terminal
// hosts only ever fill Actions and rely on the terminal's own key repeat.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as held down during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld reports whether the action is held down during this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets presses and held state for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	return c
}
