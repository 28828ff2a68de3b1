package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes the builder schema from the element schemas that follow
// it in BuilderData.Schemas.
type Kind string

const (
	KindBuilder Kind = "builder"
	KindElement Kind = "element"
)

// PropType holds either a single type signature or an ordered set of string
// literals (e.g. 'dialog' | 'alertdialog').
type PropType []string

// Type returns a single-member PropType.
func Type(name string) PropType {
	return PropType{name}
}

// Union returns a PropType listing every literal in order.
func Union(members ...string) PropType {
	out := make(PropType, len(members))
	copy(out, members)
	return out
}

// IsUnion reports whether the type enumerates more than one member.
func (t PropType) IsUnion() bool {
	return len(t) > 1
}

// Empty reports whether the type has no members or a blank member.
func (t PropType) Empty() bool {
	if len(t) == 0 {
		return true
	}
	for _, member := range t {
		if strings.TrimSpace(member) == "" {
			return true
		}
	}
	return false
}

// String joins union members with " | ".
func (t PropType) String() string {
	return strings.Join(t, " | ")
}

// MarshalJSON writes a single-member type as a string and unions as a list.
func (t PropType) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts a string or a list of strings. null leaves the type
// nil so Validate reports it.
func (t *PropType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = PropType{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("content: prop type must be a string or list of strings: %w", err)
	}
	*t = PropType(many)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t PropType) MarshalYAML() (any, error) {
	if len(t) == 1 {
		return t[0], nil
	}
	return []string(t), nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *PropType) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*t = nil
		return nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		*t = PropType{node.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*t = PropType(many)
		return nil
	default:
		return fmt.Errorf("content: prop type must be a string or list of strings (line %d)", node.Line)
	}
}

// Prop documents one configuration option of a builder.
type Prop struct {
	Name        string   `json:"name" yaml:"name"`
	Type        PropType `json:"type" yaml:"type"`
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Description string   `json:"description" yaml:"description"`
	// LongType expands Type for renderers that can show a detail view, e.g.
	// the full shape of a positioning config object.
	LongType string `json:"longType,omitempty" yaml:"longType,omitempty"`
}

// HasDefault reports whether the prop documents a default value.
func (p Prop) HasDefault() bool {
	return strings.TrimSpace(p.Default) != ""
}

// DataAttribute documents an attribute rendered on an element for styling or
// state hooks.
type DataAttribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Element documents one sub-element a builder produces.
type Element struct {
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description" yaml:"description"`
	DataAttributes []DataAttribute `json:"dataAttributes,omitempty" yaml:"dataAttributes,omitempty"`
}

// State documents a reactive value exposed by a builder.
type State struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// KeyboardEntry is one row of a keyboard interaction table.
type KeyboardEntry struct {
	Key      string `json:"key" yaml:"key"`
	Behavior string `json:"behavior" yaml:"behavior"`
}

// Schema is either the builder schema (Kind == KindBuilder) or the schema of
// one rendered element (Kind == KindElement). Fields that do not apply to a
// kind stay empty.
type Schema struct {
	Kind           Kind            `json:"kind" yaml:"kind"`
	Title          string          `json:"title" yaml:"title"`
	Builder        string          `json:"builder,omitempty" yaml:"builder,omitempty"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	Props          []Prop          `json:"props,omitempty" yaml:"props,omitempty"`
	Elements       []Element       `json:"elements,omitempty" yaml:"elements,omitempty"`
	States         []State         `json:"states,omitempty" yaml:"states,omitempty"`
	Options        []Prop          `json:"options,omitempty" yaml:"options,omitempty"`
	DataAttributes []DataAttribute `json:"dataAttributes,omitempty" yaml:"dataAttributes,omitempty"`
}

// PropNames lists prop names in declaration order.
func (s Schema) PropNames() []string {
	return propNames(s.Props)
}

// OptionNames lists option names in declaration order.
func (s Schema) OptionNames() []string {
	return propNames(s.Options)
}

// ElementNames lists the names of the elements declared by a builder schema.
func (s Schema) ElementNames() []string {
	names := make([]string, 0, len(s.Elements))
	for _, el := range s.Elements {
		names = append(names, el.Name)
	}
	return names
}

// Prop returns the prop with the given name.
func (s Schema) Prop(name string) (Prop, bool) {
	for _, prop := range s.Props {
		if prop.Name == name {
			return prop, true
		}
	}
	return Prop{}, false
}

// DataAttribute returns the data attribute with the given name.
func (s Schema) DataAttribute(name string) (DataAttribute, bool) {
	for _, attr := range s.DataAttributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return DataAttribute{}, false
}

func propNames(props []Prop) []string {
	names := make([]string, 0, len(props))
	for _, prop := range props {
		names = append(names, prop.Name)
	}
	return names
}

// BuilderData is the aggregate exported per builder: its schema followed by
// one schema per rendered element, a features list and a keyboard table.
type BuilderData struct {
	Schemas  []Schema        `json:"schemas" yaml:"schemas"`
	Features []string        `json:"features" yaml:"features"`
	Keyboard []KeyboardEntry `json:"keyboard" yaml:"keyboard"`
}

// Builder returns the leading builder schema.
func (d BuilderData) Builder() (Schema, bool) {
	if len(d.Schemas) == 0 || d.Schemas[0].Kind != KindBuilder {
		return Schema{}, false
	}
	return d.Schemas[0], true
}

// Name returns the builder name recorded on the builder schema.
func (d BuilderData) Name() string {
	builder, ok := d.Builder()
	if !ok {
		return ""
	}
	return builder.Builder
}

// Elements returns the element schemas in documentation order.
func (d BuilderData) Elements() []Schema {
	out := make([]Schema, 0, len(d.Schemas))
	for _, schema := range d.Schemas {
		if schema.Kind == KindElement {
			out = append(out, schema)
		}
	}
	return out
}

// Element returns the element schema with the given name.
func (d BuilderData) Element(name string) (Schema, bool) {
	for _, schema := range d.Schemas {
		if schema.Kind == KindElement && schema.Title == name {
			return schema, true
		}
	}
	return Schema{}, false
}

// ElementNames lists element schema names in documentation order.
func (d BuilderData) ElementNames() []string {
	elements := d.Elements()
	names := make([]string, 0, len(elements))
	for _, el := range elements {
		names = append(names, el.Title)
	}
	return names
}

// Clone returns a deep copy so callers can filter or decorate the data
// without touching the original.
func (d BuilderData) Clone() BuilderData {
	out := BuilderData{
		Schemas:  make([]Schema, len(d.Schemas)),
		Features: cloneSlice(d.Features),
		Keyboard: cloneSlice(d.Keyboard),
	}
	for i, schema := range d.Schemas {
		out.Schemas[i] = schema.clone()
	}
	return out
}

func (s Schema) clone() Schema {
	out := s
	out.Props = cloneProps(s.Props)
	out.Options = cloneProps(s.Options)
	out.States = cloneSlice(s.States)
	out.DataAttributes = cloneSlice(s.DataAttributes)
	if s.Elements != nil {
		out.Elements = make([]Element, len(s.Elements))
		for i, el := range s.Elements {
			el.DataAttributes = cloneSlice(el.DataAttributes)
			out.Elements[i] = el
		}
	}
	return out
}

func cloneProps(props []Prop) []Prop {
	if props == nil {
		return nil
	}
	out := make([]Prop, len(props))
	for i, prop := range props {
		prop.Type = cloneSlice(prop.Type)
		out[i] = prop
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
