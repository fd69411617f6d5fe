package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Special key names accepted in keymaps
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
}

// LoadKeyConfig builds a sparse override KeyTable from key name -> action name pairs
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}
	for keyName, actionName := range bindings {
		action, ok := LookupAction(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown action %q", keyName, actionName)
		}
		if err := bindKey(kt, keyName, action); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

func bindKey(kt *KeyTable, keyName string, action Action) error {
	if key, ok := specialKeyNames[strings.ToLower(keyName)]; ok {
		kt.SpecialKeys[key] = action
		return nil
	}
	if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
		kt.Runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(keyName) == 1 {
		r, _ := utf8.DecodeRuneInString(keyName)
		kt.Runes[r] = action
		return nil
	}
	return fmt.Errorf("keymap: invalid key name %q", keyName)
}
