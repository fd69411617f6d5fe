package input

import (
	"time"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
)

// KeyState is the shared flag set written by key events and read once per tick
// Terminals report presses and repeats, never releases, so a direction counts as held
// until holdTimeout passes without a repeat
// Not safe for concurrent use; writer and reader share the UI goroutine
type KeyState struct {
	holdTimeout time.Duration
	pressed     [ActionCount]time.Time
	confirm     bool
}

// NewKeyState creates a key state with the given hold timeout, zero uses the default
func NewKeyState(holdTimeout time.Duration) *KeyState {
	if holdTimeout <= 0 {
		holdTimeout = parameter.KeyHoldTimeout
	}
	return &KeyState{holdTimeout: holdTimeout}
}

// Press records an action at now; system actions are not stored
func (ks *KeyState) Press(a Action, now time.Time) {
	switch {
	case a.IsMovement():
		// Opposite direction cancels the held one, matching a real key release
		ks.pressed[opposite(a)] = time.Time{}
		ks.pressed[a] = now
	case a == ActionConfirm:
		ks.confirm = true
	}
}

// Held reports whether a movement action is still within its hold window
func (ks *KeyState) Held(a Action, now time.Time) bool {
	t := ks.pressed[a]
	if t.IsZero() {
		return false
	}
	return now.Sub(t) < ks.holdTimeout
}

// Sample returns the instantaneous control state and consumes the confirm latch
func (ks *KeyState) Sample(now time.Time) core.InputSample {
	in := core.InputSample{
		Up:      ks.Held(ActionUp, now),
		Down:    ks.Held(ActionDown, now),
		Left:    ks.Held(ActionLeft, now),
		Right:   ks.Held(ActionRight, now),
		Confirm: ks.confirm,
	}
	ks.confirm = false
	return in
}

// Reset clears every held key and the latch
func (ks *KeyState) Reset() {
	ks.pressed = [ActionCount]time.Time{}
	ks.confirm = false
}

func opposite(a Action) Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}
