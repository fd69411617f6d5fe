package input

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve configured action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"up":    ActionUp,
	"down":  ActionDown,
	"left":  ActionLeft,
	"right": ActionRight,

	"confirm": ActionConfirm,

	"toggle_mute": ActionToggleMute,
	"quit":        ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// LookupAction resolves a configured action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
