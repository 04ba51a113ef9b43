package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state where every command is accepted.
	StatePlaying State = iota
	// StateDefeated is entered when the player loses a fight. Only
	// informational commands and quit are accepted.
	StateDefeated
	// StateQuit is entered on the quit command. Nothing is accepted after it.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDefeated:
		return "defeated"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// accepts reports whether a command of kind k may run in state s.
func (s State) accepts(k Kind) bool {
	switch s {
	case StatePlaying:
		return true
	case StateDefeated:
		return k == Status || k == Look || k == Quests || k == Quit
	default:
		return false
	}
}
