package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer ship left
	ActionRight          // D, Right arrow - steer ship right
	ActionFire           // Space - fire, also starts/restarts the shooter
	ActionConfirm        // Enter - start game from the menu phase
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionDebug          // F1 - toggle physics debug drawing
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionConfirm: "Confirm",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionDebug:   "Debug",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions that were down during one simulation tick.
// Games poll it the way a host engine polls key-down state.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is down this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
