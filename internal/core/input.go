package core

// Action represents a semantic input trigger, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - lift the actor while playing
	ActionPointer        // Mouse down - jump while playing, restart after game over
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPointer:
		return "Pointer"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
