package pongo

import (
	"strings"
	"sync"
	"unicode"

	"github.com/flosch/pongo2/v6"
)

var builtinFilters sync.Once

func registerBuiltinFilters() {
	builtinFilters.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":   filterTrim,
			"anchor": filterAnchor,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAnchor turns text into a URL fragment, with an optional prefix:
// {{ "Shift + Tab"|anchor:"kbd" }} renders "kbd-shift-tab".
func filterAnchor(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	anchor := Anchor(in.String())
	if param != nil && !param.IsNil() {
		if prefix := strings.TrimSpace(param.String()); prefix != "" && anchor != "" {
			anchor = prefix + "-" + anchor
		}
	}
	return pongo2.AsValue(anchor), nil
}

// Anchor lowercases s and joins its letter and digit runs with dashes.
func Anchor(s string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}
