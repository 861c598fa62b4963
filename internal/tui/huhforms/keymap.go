package huhforms

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// cancelKey closes every modal form; the handlers catch it before huh does
const cancelKey = "esc"

// newLineKeys break a line in the description field
var newLineKeys = []string{"shift+enter", "alt+enter", "ctrl+j"}

// NewFormKeyMap returns the keymap for the modal task and filter forms.
// saveKey and esc belong to the modal, so no field binding may claim them.
func NewFormKeyMap(saveKey string) *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	reserved := []string{saveKey, cancelKey}

	newLine := withoutKeys(newLineKeys, reserved)
	km.Text.NewLine = key.NewBinding(
		key.WithKeys(newLine...),
		key.WithHelp(strings.Join(newLine, " / "), "new line"),
	)

	// Descriptions are edited inline
	km.Text.Editor.SetEnabled(false)
	// Aborting is esc; a huh abort would leave a dead form on screen
	km.Quit.SetEnabled(false)

	return km
}

func withoutKeys(keys, reserved []string) []string {
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(reserved, k) {
			kept = append(kept, k)
		}
	}
	return kept
}
