package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Handler turns terminal key events into key state updates and host actions
type Handler struct {
	table *KeyTable
	state *KeyState
	now   func() time.Time
}

// NewHandler creates a handler; a nil table uses DefaultKeyTable
func NewHandler(table *KeyTable, state *KeyState, now func() time.Time) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{table: table, state: state, now: now}
}

// HandleEvent records the key and returns its action
// Callers act on system actions (quit, mute); unbound keys return ActionNone and change nothing
func (h *Handler) HandleEvent(ev *tcell.EventKey) Action {
	action := h.table.Lookup(ev)
	if action == ActionNone {
		return ActionNone
	}
	h.state.Press(action, h.now())
	return action
}

// State returns the key state sampled by the loop
func (h *Handler) State() *KeyState {
	return h.state
}
