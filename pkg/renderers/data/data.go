// Package data serialises builder documentation for consumers that render it
// themselves, as JSON or YAML.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render"
)

// JSON renders BuilderData as indented JSON.
type JSON struct {
	Indent string
}

// YAML renders BuilderData as YAML.
type YAML struct {
	Indent int
}

var (
	_ render.Renderer    = JSON{}
	_ render.Renderer    = YAML{}
	_ render.Extensioner = JSON{}
	_ render.Extensioner = YAML{}
)

// NewJSON returns a JSON renderer using two-space indentation.
func NewJSON() JSON {
	return JSON{Indent: "  "}
}

// NewYAML returns a YAML renderer using two-space indentation.
func NewYAML() YAML {
	return YAML{Indent: 2}
}

// Name returns the registry key "json".
func (JSON) Name() string { return "json" }

// ContentType reports the JSON MIME type.
func (JSON) ContentType() string { return "application/json" }

// Extension returns ".json".
func (JSON) Extension() string { return ".json" }

// Render encodes the section-filtered builder data as indented JSON.
func (j JSON) Render(ctx context.Context, data content.BuilderData, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(render.ApplySections(data, options)); err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the registry key "yaml".
func (YAML) Name() string { return "yaml" }

// ContentType reports the YAML MIME type.
func (YAML) ContentType() string { return "application/yaml" }

// Extension returns ".yaml".
func (YAML) Extension() string { return ".yaml" }

// Render encodes the section-filtered builder data as YAML.
func (y YAML) Render(ctx context.Context, data content.BuilderData, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}
	if err := enc.Encode(render.ApplySections(data, options)); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml renderer: close: %w", err)
	}
	return buf.Bytes(), nil
}
