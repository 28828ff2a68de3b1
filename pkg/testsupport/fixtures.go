// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// DecodeBuilderData decodes renderer output back into BuilderData. format is
// "json" or "yaml".
func DecodeBuilderData(t *testing.T, format string, payload []byte) content.BuilderData {
	t.Helper()

	var out content.BuilderData
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(payload, &out)
	case "yaml", "yml":
		err = yaml.Unmarshal(payload, &out)
	default:
		t.Fatalf("testsupport: unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("decode %s builder data: %v\n%s", format, err, payload)
	}
	return out
}

// MustLoadBuilderData reads a JSON or YAML fixture, picking the decoder from
// the file extension.
func MustLoadBuilderData(t *testing.T, path string) content.BuilderData {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return DecodeBuilderData(t, strings.TrimPrefix(filepath.Ext(path), "."), raw)
}

// WriteGolden rewrites a JSON golden file from value when UPDATE_GOLDENS is
// set, and is a no-op otherwise.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// RequireEqual fails the test with a go-cmp diff when want and got differ.
func RequireEqual(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// CaptureTemplateOutput runs render with a buffer and returns both the string
// result and what was written to the buffer.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
