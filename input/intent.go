package input

// Action is the semantic meaning of a key
type Action uint8

const (
	ActionNone Action = iota

	// Held movement, emulated from key repeat
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Latched until the next tick samples it
	ActionConfirm

	// Host commands, never seen by the simulation
	ActionToggleMute
	ActionQuit

	ActionCount
)

// IsMovement reports whether a is one of the four held directions
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// IsSystem reports whether a is handled by the host rather than the simulation
func (a Action) IsSystem() bool {
	return a == ActionToggleMute || a == ActionQuit
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
