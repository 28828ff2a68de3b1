package content

import "strings"

// BuilderDef lists the pieces of a builder schema.
type BuilderDef struct {
	Title    string
	Props    []Prop
	Elements []Element
	States   []State
	// Options holds the props also returned as live reactive options. Every
	// entry should appear in Props as well.
	Options []Prop
}

// ElementDef lists the pieces of an element schema.
type ElementDef struct {
	Description    string
	DataAttributes []DataAttribute
}

// BuilderSchema builds the schema that heads a builder's documentation.
// Slices are copied so later edits to def never leak into the schema.
func BuilderSchema(builder string, def BuilderDef) Schema {
	title := strings.TrimSpace(def.Title)
	if title == "" {
		title = builder
	}
	return Schema{
		Kind:     KindBuilder,
		Title:    title,
		Builder:  strings.TrimSpace(builder),
		Props:    cloneProps(def.Props),
		Elements: Schema{Elements: def.Elements}.clone().Elements,
		States:   cloneSlice(def.States),
		Options:  cloneProps(def.Options),
	}
}

// ElementSchema builds the schema of one rendered element.
func ElementSchema(name string, def ElementDef) Schema {
	return Schema{
		Kind:           KindElement,
		Title:          strings.TrimSpace(name),
		Description:    def.Description,
		DataAttributes: cloneSlice(def.DataAttributes),
	}
}

// NewBuilderData assembles the aggregate value exported per builder. Element
// schemas are stamped with the builder name and kept in the given order.
func NewBuilderData(builder Schema, elements []Schema, features []string, keyboard []KeyboardEntry) BuilderData {
	schemas := make([]Schema, 0, len(elements)+1)
	schemas = append(schemas, builder.clone())
	for _, el := range elements {
		el = el.clone()
		el.Builder = builder.Builder
		schemas = append(schemas, el)
	}
	return BuilderData{
		Schemas:  schemas,
		Features: cloneSlice(features),
		Keyboard: cloneSlice(keyboard),
	}
}

// Concat joins prop lists into a fresh slice.
func Concat(lists ...[]Prop) []Prop {
	size := 0
	for _, list := range lists {
		size += len(list)
	}
	out := make([]Prop, 0, size)
	for _, list := range lists {
		out = append(out, cloneProps(list)...)
	}
	return out
}
