package render

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

var docsFallbacks = map[string]string{
	"docs.builder": "templates/builder.tmpl",
	"docs.table":   "templates/table.tmpl",
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":        "#123456",
			"surface.bg":   "#ffffff",
			"table_border": "#dddddd",
		},
		Templates: map[string]string{
			"docs.table": "themes/acme/table.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme/",
			Files: map[string]string{
				"docs.stylesheet": "docs.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"docs.builder": "themes/acme/dark/builder.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"docs.stylesheet": "docs.dark.css",
					},
				},
			},
		},
	}
}

func TestThemeFromManifest_Base(t *testing.T) {
	cfg, err := ThemeFromManifest(acmeManifest(), "", docsFallbacks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "" {
		t.Fatalf("unexpected identity %s/%s", cfg.Theme, cfg.Variant)
	}
	wantVars := map[string]string{
		"--brand":        "#123456",
		"--surface.bg":   "#ffffff",
		"--table_border": "#dddddd",
	}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	wantPartials := map[string]string{
		"docs.builder": "templates/builder.tmpl",
		"docs.table":   "themes/acme/table.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("docs.stylesheet"); got != "/assets/themes/acme/docs.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for missing asset, got %q", got)
	}
}

func TestThemeFromManifest_Variant(t *testing.T) {
	cfg, err := ThemeFromManifest(acmeManifest(), "dark", docsFallbacks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not applied: %v", cfg.Tokens)
	}
	if cfg.Tokens["surface.bg"] != "#ffffff" {
		t.Fatalf("base token lost: %v", cfg.Tokens)
	}
	if cfg.Partials["docs.builder"] != "themes/acme/dark/builder.tmpl" {
		t.Fatalf("variant partial not applied: %v", cfg.Partials)
	}
	if got := cfg.AssetURL("docs.stylesheet"); got != "/assets/themes/acme/docs.dark.css" {
		t.Fatalf("unexpected variant stylesheet %q", got)
	}
}

func TestThemeFromManifest_Errors(t *testing.T) {
	if _, err := ThemeFromManifest(nil, "", nil); err == nil {
		t.Fatalf("expected nil manifest error")
	}
	if _, err := ThemeFromManifest(acmeManifest(), "sepia", nil); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestResolveTheme_SelectorFallsBackToDefault(t *testing.T) {
	registry := theme.NewRegistry()
	if err := registry.Register(acmeManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	selector := theme.Selector{Registry: registry, DefaultTheme: "acme", DefaultVariant: "dark"}

	cfg, err := ResolveTheme(selector, "unknown", "", docsFallbacks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Variant != "dark" || cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("default variant not applied: %s %v", cfg.Variant, cfg.Tokens)
	}

	if _, err := ResolveTheme(nil, "acme", "", nil); err == nil {
		t.Fatalf("expected nil selector error")
	}
	empty := theme.Selector{Registry: theme.NewRegistry()}
	if _, err := ResolveTheme(empty, "acme", "", nil); err == nil {
		t.Fatalf("expected missing theme error")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	cfg, err := ThemeFromManifest(acmeManifest(), "dark", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	style, err := CSSVarsStyle(cfg)
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	want := ":root {\n  --brand: #654321;\n  --surface\\.bg: #ffffff;\n  --table_border: #dddddd;\n}"
	if style != want {
		t.Fatalf("unexpected style block:\n%s", style)
	}

	if style, err := CSSVarsStyle(nil); err != nil || style != "" {
		t.Fatalf("nil config should render no style, got %q %v", style, err)
	}
}

func TestCSSVarsStyle_RejectsUnsafeValues(t *testing.T) {
	for _, value := range []string{
		"</style><script>alert(1)</script>",
		"red; background: url(x)",
		"red } body { display: none",
	} {
		cfg := &theme.RendererConfig{
			Theme:   "acme",
			CSSVars: map[string]string{"--brand": value},
		}
		style, err := CSSVarsStyle(cfg)
		if err == nil {
			t.Fatalf("expected error for %q, got %q", value, style)
		}
		if !strings.Contains(err.Error(), "--brand") {
			t.Fatalf("error should name the variable: %v", err)
		}
	}
}
