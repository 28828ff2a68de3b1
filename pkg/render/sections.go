package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

// Section names a part of the builder documentation.
type Section string

const (
	SectionFeatures   Section = "features"
	SectionProps      Section = "props"
	SectionOptions    Section = "options"
	SectionStates     Section = "states"
	SectionElements   Section = "elements"
	SectionAttributes Section = "attributes"
	SectionKeyboard   Section = "keyboard"
)

// AllSections lists every section in rendering order.
func AllSections() []Section {
	return []Section{
		SectionFeatures,
		SectionProps,
		SectionOptions,
		SectionStates,
		SectionElements,
		SectionAttributes,
		SectionKeyboard,
	}
}

// ParseSections parses a comma separated section list. Unknown names are
// errors; an empty string yields nil (all sections).
func ParseSections(raw string) ([]Section, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	valid := make(map[Section]struct{})
	for _, s := range AllSections() {
		valid[s] = struct{}{}
	}

	var out []Section
	seen := make(map[Section]struct{})
	for _, token := range strings.Split(raw, ",") {
		section := Section(strings.ToLower(strings.TrimSpace(token)))
		if section == "" {
			continue
		}
		if _, ok := valid[section]; !ok {
			return nil, fmt.Errorf("render: unknown section %q", section)
		}
		if _, dup := seen[section]; dup {
			continue
		}
		seen[section] = struct{}{}
		out = append(out, section)
	}
	return out, nil
}

// Includes reports whether a section should be rendered.
func (o RenderOptions) Includes(section Section) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// ApplySections returns a copy of data with excluded sections emptied. The
// builder schema and element schemas always remain so titles still render.
func ApplySections(data content.BuilderData, options RenderOptions) content.BuilderData {
	out := data.Clone()
	if len(options.Sections) == 0 {
		return out
	}

	if !options.Includes(SectionFeatures) {
		out.Features = nil
	}
	if !options.Includes(SectionKeyboard) {
		out.Keyboard = nil
	}

	filtered := out.Schemas[:0]
	for _, schema := range out.Schemas {
		switch schema.Kind {
		case content.KindBuilder:
			if !options.Includes(SectionProps) {
				schema.Props = nil
			}
			if !options.Includes(SectionOptions) {
				schema.Options = nil
			}
			if !options.Includes(SectionStates) {
				schema.States = nil
			}
			if !options.Includes(SectionElements) {
				schema.Elements = nil
			}
		case content.KindElement:
			if !options.Includes(SectionElements) && !options.Includes(SectionAttributes) {
				continue
			}
			if !options.Includes(SectionAttributes) {
				schema.DataAttributes = nil
			}
		}
		filtered = append(filtered, schema)
	}
	out.Schemas = filtered
	return out
}
