package builders

import (
	"sort"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

var constructors = map[string]func() content.BuilderData{
	dialogName:  DialogData,
	tooltipName: TooltipData,
}

// Names lists the built-in builders, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns freshly built data for a built-in builder.
func Lookup(name string) (content.BuilderData, bool) {
	build, ok := constructors[name]
	if !ok {
		return content.BuilderData{}, false
	}
	return build(), true
}
