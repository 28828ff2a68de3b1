package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

// Component names used in the exported document.
const (
	SchemaPropType      = "PropType"
	SchemaProp          = "Prop"
	SchemaDataAttribute = "DataAttribute"
	SchemaElement       = "Element"
	SchemaState         = "State"
	SchemaKeyboardEntry = "KeyboardEntry"
	SchemaSchema        = "Schema"
	SchemaBuilderData   = "BuilderData"
)

const componentPrefix = "#/components/schemas/"

// Document builds the OpenAPI document describing the data model. version is
// written to info.version; an empty value defaults to "0.0.0".
func Document(version string) *openapi3.T {
	if strings.TrimSpace(version) == "" {
		version = "0.0.0"
	}

	schemas := openapi3.Schemas{}
	ref := func(name string) *openapi3.SchemaRef {
		return openapi3.NewSchemaRef(componentPrefix+name, schemas[name].Value)
	}
	define := func(name string, schema *openapi3.Schema) {
		schemas[name] = openapi3.NewSchemaRef("", schema)
	}

	propType := openapi3.NewOneOfSchema(
		openapi3.NewStringSchema(),
		openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()).WithMinItems(2),
	)
	propType.Description = "A type signature or an ordered set of string literals."
	define(SchemaPropType, propType)

	prop := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
		WithPropertyRef("type", ref(SchemaPropType)).
		WithProperty("default", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("longType", openapi3.NewStringSchema())
	prop.Required = []string{"name", "type", "description"}
	define(SchemaProp, prop)

	attr := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithPattern("^data-.+")).
		WithProperty("value", openapi3.NewStringSchema())
	attr.Required = []string{"name", "value"}
	define(SchemaDataAttribute, attr)

	element := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("dataAttributes", arrayOf(ref(SchemaDataAttribute)))
	element.Required = []string{"name", "description"}
	define(SchemaElement, element)

	state := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema())
	state.Required = []string{"name", "type", "description"}
	define(SchemaState, state)

	key := openapi3.NewObjectSchema().
		WithProperty("key", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("behavior", openapi3.NewStringSchema())
	key.Required = []string{"key", "behavior"}
	define(SchemaKeyboardEntry, key)

	schema := openapi3.NewObjectSchema().
		WithProperty("kind", openapi3.NewStringSchema().WithEnum(string(content.KindBuilder), string(content.KindElement))).
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("builder", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("props", arrayOf(ref(SchemaProp))).
		WithProperty("elements", arrayOf(ref(SchemaElement))).
		WithProperty("states", arrayOf(ref(SchemaState))).
		WithProperty("options", arrayOf(ref(SchemaProp))).
		WithProperty("dataAttributes", arrayOf(ref(SchemaDataAttribute)))
	schema.Required = []string{"kind", "title"}
	define(SchemaSchema, schema)

	features := openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	features.Nullable = true
	keyboard := arrayOf(ref(SchemaKeyboardEntry))
	keyboard.Nullable = true

	data := openapi3.NewObjectSchema().
		WithProperty("schemas", arrayOf(ref(SchemaSchema)).WithMinItems(1)).
		WithProperty("features", features).
		WithProperty("keyboard", keyboard)
	data.Required = []string{"schemas", "features", "keyboard"}
	define(SchemaBuilderData, data)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Builder documentation data model",
			Description: "Schemas for builder documentation exported by go-builderdocs.",
			Version:     version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}
}

// Validate checks the generated document with kin-openapi.
func Validate(ctx context.Context, doc *openapi3.T) error {
	if doc == nil {
		return fmt.Errorf("openapi: document is nil")
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi: validate: %w", err)
	}
	return nil
}

// MarshalJSON builds, validates and encodes the document.
func MarshalJSON(ctx context.Context, version string) ([]byte, error) {
	doc := Document(version)
	if err := Validate(ctx, doc); err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode: %w", err)
	}
	return payload, nil
}

// ValidateBuilderData checks exported BuilderData JSON against the
// BuilderData component schema.
func ValidateBuilderData(doc *openapi3.T, payload []byte) error {
	if doc == nil || doc.Components == nil {
		return fmt.Errorf("openapi: document has no components")
	}
	ref, ok := doc.Components.Schemas[SchemaBuilderData]
	if !ok || ref.Value == nil {
		return fmt.Errorf("openapi: %s schema missing", SchemaBuilderData)
	}
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("openapi: decode payload: %w", err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("openapi: builder data does not match schema: %w", err)
	}
	return nil
}

func arrayOf(items *openapi3.SchemaRef) *openapi3.Schema {
	s := openapi3.NewArraySchema()
	s.Items = items
	return s
}
