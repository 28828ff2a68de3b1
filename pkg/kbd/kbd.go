// Package kbd names the keys that appear in keyboard interaction tables.
package kbd

import "sort"

// Symbolic key names as shown in documentation.
const (
	Alt        = "Alt"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	ArrowUp    = "ArrowUp"
	Backspace  = "Backspace"
	Ctrl       = "Control"
	Delete     = "Delete"
	End        = "End"
	Enter      = "Enter"
	Escape     = "Escape"
	F1         = "F1"
	Home       = "Home"
	Meta       = "Meta"
	PageDown   = "PageDown"
	PageUp     = "PageUp"
	Shift      = "Shift"
	ShiftTab   = "Shift + Tab"
	Space      = "Space"
	Tab        = "Tab"
	AZ         = "A-Z"
)

var known = map[string]struct{}{
	Alt: {}, ArrowDown: {}, ArrowLeft: {}, ArrowRight: {}, ArrowUp: {},
	Backspace: {}, Ctrl: {}, Delete: {}, End: {}, Enter: {}, Escape: {},
	F1: {}, Home: {}, Meta: {}, PageDown: {}, PageUp: {}, Shift: {},
	ShiftTab: {}, Space: {}, Tab: {}, AZ: {},
}

// Known reports whether key is one of the symbolic key names.
func Known(key string) bool {
	_, ok := known[key]
	return ok
}

// All returns every symbolic key name, sorted.
func All() []string {
	out := make([]string, 0, len(known))
	for key := range known {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
