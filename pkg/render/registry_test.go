package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, content.BuilderData, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

type extRenderer struct{ stubRenderer }

func (extRenderer) Extension() string { return ".md" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "b"})
	reg.MustRegister(stubRenderer{name: "a"})

	if got := reg.List(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected list %v", got)
	}
	if !reg.Has("a") || reg.Has("c") {
		t.Fatalf("has mismatch")
	}
	if _, err := reg.Get("c"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	if err := reg.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
}

func TestRegistry_ForExtension(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(extRenderer{stubRenderer{name: "markdown"}})
	reg.MustRegister(extRenderer{stubRenderer{name: "gfm"}})
	reg.MustRegister(stubRenderer{name: "yaml"})

	cases := []struct {
		ext  string
		want string
		ok   bool
	}{
		{ext: ".md", want: "markdown", ok: true},
		{ext: "MD", want: "markdown", ok: true},
		{ext: ".yml", want: "yaml", ok: true},
		{ext: ".yaml", want: "yaml", ok: true},
		{ext: ".pdf"},
		{ext: ""},
	}
	for _, tc := range cases {
		got, ok := reg.ForExtension(tc.ext)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ForExtension(%q) = %q, %v; want %q, %v", tc.ext, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	if got := ExtensionFor(stubRenderer{name: "json"}); got != ".json" {
		t.Fatalf("unexpected fallback extension %q", got)
	}
	if got := ExtensionFor(extRenderer{stubRenderer{name: "markdown"}}); got != ".md" {
		t.Fatalf("unexpected extension %q", got)
	}
}

func TestRenderOptions_Heading(t *testing.T) {
	opts := RenderOptions{HeadingOffset: 2}
	if opts.Heading(1) != 3 {
		t.Fatalf("expected offset heading")
	}
	if opts.Heading(9) != 6 {
		t.Fatalf("expected clamp to 6")
	}
	if (RenderOptions{HeadingOffset: -4}).Heading(1) != 1 {
		t.Fatalf("expected clamp to 1")
	}
}
