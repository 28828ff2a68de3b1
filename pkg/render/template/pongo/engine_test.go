package pongo_test

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render/template/pongo"
	"github.com/goliatone/go-builderdocs/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(embeddedTemplates)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("testdata/templates/hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q vs %q", written, result)
	}
}

func TestEngine_BaseDirTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "testdata", "templates")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "hello.tpl"), []byte("Hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	engine := newEngine(t, pongo.WithBaseDir(dir))
	result, err := engine.RenderTemplate("testdata/templates/hello.tpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi Ada" {
		t.Fatalf("expected on-disk template, got %q", result)
	}
}

func TestEngine_Globals(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobals(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("testdata/templates/use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "staging" {
		t.Fatalf("unexpected result %q", result)
	}

	if err := engine.GlobalContext(map[string]any{"settings": map[string]any{"env": "prod"}}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	result, err = engine.RenderTemplate("testdata/templates/use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "prod" {
		t.Fatalf("expected updated global, got %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	if err := engine.RegisterFilter(" ", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}

	result, err := engine.RenderTemplate("testdata/templates/use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_WithFilters(t *testing.T) {
	engine := newEngine(t, pongo.WithFilters(map[string]pongo2.FilterFunction{
		"whisper": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.ToLower(in.String())), nil
		},
	}))
	result, err := engine.RenderString("{{ word|whisper }}", map[string]any{"word": "QUIET"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "quiet" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_AnchorFilter(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("testdata/templates/anchors", map[string]any{
		"keys": []string{"Shift + Tab", "Escape"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "kbd-shift-tab;kbd-escape;" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RenderStringWithStructData(t *testing.T) {
	engine := newEngine(t)
	entry := content.KeyboardEntry{Key: "Enter", Behavior: "Opens the dialog."}

	result, err := engine.RenderString("{{ key }}: {{ behavior|trim }}", entry)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Enter: Opens the dialog." {
		t.Fatalf("unexpected result %q", result)
	}

	if _, err := engine.RenderString("{{ x }}", []string{"not", "an", "object"}); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected missing source error")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("testdata/templates/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestAnchor(t *testing.T) {
	cases := map[string]string{
		"Shift + Tab":     "shift-tab",
		"  createDialog ": "createdialog",
		"data-melt-arrow": "data-melt-arrow",
		"A-Z":             "a-z",
		"":                "",
	}
	for in, want := range cases {
		if got := pongo.Anchor(in); got != want {
			t.Fatalf("Anchor(%q) = %q, want %q", in, got, want)
		}
	}
}
