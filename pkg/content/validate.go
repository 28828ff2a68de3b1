package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-builderdocs/pkg/kbd"
)

// Sentinel errors wrapped by Issue so callers can match with errors.Is.
var (
	ErrNoSchemas          = errors.New("content: builder data has no schemas")
	ErrMissingBuilder     = errors.New("content: first schema is not a builder schema")
	ErrEmptyName          = errors.New("content: empty name")
	ErrDuplicateProp      = errors.New("content: duplicate prop")
	ErrEmptyType          = errors.New("content: prop has no type")
	ErrUnknownOption      = errors.New("content: option not listed in props")
	ErrDuplicateElement   = errors.New("content: duplicate element")
	ErrUndeclaredElement  = errors.New("content: element not declared by builder")
	ErrMissingElement     = errors.New("content: declared element has no schema")
	ErrUnknownKey         = errors.New("content: unknown keyboard key")
	ErrInvalidAttribute   = errors.New("content: invalid data attribute")
	ErrDuplicateAttribute = errors.New("content: duplicate data attribute")
)

// Issue is a single authoring defect found by Validate.
type Issue struct {
	Err     error
	Path    string
	Message string
}

func (i Issue) Error() string {
	if i.Path == "" {
		return fmt.Sprintf("%v: %s", i.Err, i.Message)
	}
	return fmt.Sprintf("%s: %v: %s", i.Path, i.Err, i.Message)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// ValidationError aggregates every issue found in one BuilderData value.
type ValidationError struct {
	Builder string
	Issues  []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "content: validation failed"
	}
	name := e.Builder
	if name == "" {
		name = "<unnamed>"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Error())
	}
	return fmt.Sprintf("content: builder %q has %d issue(s): %s", name, len(e.Issues), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		out = append(out, issue)
	}
	return out
}

// ValidateOption customises Validate.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	knownKey func(string) bool
}

// WithKeyResolver replaces the symbolic key table used to check keyboard
// entries.
func WithKeyResolver(fn func(string) bool) ValidateOption {
	return func(cfg *validateConfig) {
		if fn != nil {
			cfg.knownKey = fn
		}
	}
}

// Validate checks the structural invariants of a BuilderData value and
// returns a *ValidationError listing every issue, or nil.
func Validate(data BuilderData, options ...ValidateOption) error {
	cfg := validateConfig{knownKey: kbd.Known}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	v := &validator{cfg: cfg}
	v.run(data)
	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationError{Builder: data.Name(), Issues: v.issues}
}

type validator struct {
	cfg    validateConfig
	issues []Issue
}

func (v *validator) add(err error, path, format string, args ...any) {
	v.issues = append(v.issues, Issue{Err: err, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) run(data BuilderData) {
	if len(data.Schemas) == 0 {
		v.add(ErrNoSchemas, "schemas", "at least the builder schema is required")
		return
	}
	builder, ok := data.Builder()
	if !ok {
		v.add(ErrMissingBuilder, "schemas[0]", "got kind %q", data.Schemas[0].Kind)
		return
	}

	v.checkBuilder(builder)
	v.checkElements(builder, data.Schemas[1:])
	v.checkKeyboard(data.Keyboard)
}

func (v *validator) checkBuilder(builder Schema) {
	if strings.TrimSpace(builder.Builder) == "" {
		v.add(ErrEmptyName, "schemas[0].builder", "builder name is required")
	}

	props := make(map[string]struct{}, len(builder.Props))
	for idx, prop := range builder.Props {
		path := fmt.Sprintf("schemas[0].props[%d]", idx)
		if strings.TrimSpace(prop.Name) == "" {
			v.add(ErrEmptyName, path, "prop name is required")
			continue
		}
		if prop.Type.Empty() {
			v.add(ErrEmptyType, path, "prop %q needs a type", prop.Name)
		}
		if _, exists := props[prop.Name]; exists {
			v.add(ErrDuplicateProp, path, "prop %q listed more than once", prop.Name)
			continue
		}
		props[prop.Name] = struct{}{}
	}

	for idx, opt := range builder.Options {
		path := fmt.Sprintf("schemas[0].options[%d]", idx)
		if opt.Type.Empty() {
			v.add(ErrEmptyType, path, "option %q needs a type", opt.Name)
		}
		if _, exists := props[opt.Name]; !exists {
			v.add(ErrUnknownOption, path, "option %q is not a prop", opt.Name)
		}
	}

	for idx, state := range builder.States {
		if strings.TrimSpace(state.Name) == "" {
			v.add(ErrEmptyName, fmt.Sprintf("schemas[0].states[%d]", idx), "state name is required")
		}
	}
}

func (v *validator) checkElements(builder Schema, schemas []Schema) {
	declared := make(map[string]struct{}, len(builder.Elements))
	for idx, el := range builder.Elements {
		path := fmt.Sprintf("schemas[0].elements[%d]", idx)
		if strings.TrimSpace(el.Name) == "" {
			v.add(ErrEmptyName, path, "element name is required")
			continue
		}
		if _, exists := declared[el.Name]; exists {
			v.add(ErrDuplicateElement, path, "element %q declared more than once", el.Name)
			continue
		}
		declared[el.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(schemas))
	for offset, schema := range schemas {
		path := fmt.Sprintf("schemas[%d]", offset+1)
		if schema.Kind != KindElement {
			v.add(ErrMissingBuilder, path, "only the first schema may be a builder schema")
			continue
		}
		if strings.TrimSpace(schema.Title) == "" {
			v.add(ErrEmptyName, path, "element schema name is required")
			continue
		}
		if _, exists := seen[schema.Title]; exists {
			v.add(ErrDuplicateElement, path, "element schema %q listed more than once", schema.Title)
			continue
		}
		seen[schema.Title] = struct{}{}
		if _, ok := declared[schema.Title]; !ok {
			v.add(ErrUndeclaredElement, path, "element %q is not in the builder's element list", schema.Title)
		}
		v.checkAttributes(path, schema.DataAttributes)
	}

	for _, el := range builder.Elements {
		if _, ok := seen[el.Name]; !ok && el.Name != "" {
			v.add(ErrMissingElement, "schemas", "element %q has no schema", el.Name)
		}
	}
}

func (v *validator) checkAttributes(path string, attrs []DataAttribute) {
	seen := make(map[string]struct{}, len(attrs))
	for idx, attr := range attrs {
		attrPath := fmt.Sprintf("%s.dataAttributes[%d]", path, idx)
		if !strings.HasPrefix(attr.Name, "data-") || len(attr.Name) == len("data-") {
			v.add(ErrInvalidAttribute, attrPath, "attribute %q must start with data-", attr.Name)
			continue
		}
		if _, exists := seen[attr.Name]; exists {
			v.add(ErrDuplicateAttribute, attrPath, "attribute %q listed more than once", attr.Name)
			continue
		}
		seen[attr.Name] = struct{}{}
	}
}

func (v *validator) checkKeyboard(entries []KeyboardEntry) {
	for idx, entry := range entries {
		if !v.cfg.knownKey(entry.Key) {
			v.add(ErrUnknownKey, fmt.Sprintf("keyboard[%d]", idx), "key %q is not a symbolic key name", entry.Key)
		}
	}
}
