package core

// Action represents a semantic game intent, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space or left click - flap, or start a new game
	ActionQuit         // Esc, Q, Ctrl+C or window close - save and exit
	ActionSpawn        // Obstacle spawn timer fired
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	case ActionSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

// InputFrame represents the intents collected during one simulation tick.
// Setting an action more than once in a frame has no further effect, which
// coalesces repeated presses into a single intent.
type InputFrame struct {
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
