// Package attrs formats the values shown in data-attribute tables.
package attrs

import (
	"fmt"
	"strings"
)

const (
	// OpenClosed documents the data-state attribute of open/close elements.
	OpenClosed = `"open" | "closed"`
	// Checked documents tri-state checkbox style elements.
	Checked = `"checked" | "unchecked" | "indeterminate"`
	// Orientation documents horizontal/vertical layouts.
	Orientation = `"horizontal" | "vertical"`
	// True documents boolean marker attributes that are only ever "true".
	True = "true"
)

// Melt describes the library-namespaced marker attribute carried by every
// element of the given kind, e.g. data-melt-dialog-trigger.
func Melt(name string) string {
	return fmt.Sprintf("Present on all %s elements.", label(name))
}

// Disabled describes the attribute present while an element is disabled.
func Disabled(name string) string {
	return fmt.Sprintf("Present when the %s is disabled.", label(name))
}

// MeltName returns the marker attribute name for an element of a builder.
func MeltName(builder, element string) string {
	return "data-melt-" + slug(builder) + "-" + slug(element)
}

func label(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "element"
	}
	return trimmed
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
