package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	theme "github.com/goliatone/go-theme"
)

// ResolveTheme selects a theme and variant through selector and builds the
// renderer configuration. fallbacks maps the partial keys a renderer reads to
// the templates it uses when the theme does not override them.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("render: theme selector is required")
	}
	selection, err := selector.Select(name, strings.TrimSpace(variant))
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection.Variant != "" && selection.Manifest != nil {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", selection.Theme, selection.Variant)
		}
	}
	cfg := selection.RendererTheme(fallbacks)
	return &cfg, nil
}

// ThemeFromManifest registers a single manifest and resolves it with
// ResolveTheme.
func ThemeFromManifest(manifest *theme.Manifest, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("render: theme manifest is required")
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("render: register theme %q: %w", manifest.Name, err)
	}
	selector := theme.Selector{Registry: registry, DefaultTheme: manifest.Name}
	return ResolveTheme(selector, manifest.Name, variant, fallbacks)
}

// CSSVarsStyle renders the theme's CSS custom properties as a :root block
// with deterministic ordering. Values that could end the declaration or the
// enclosing <style> element are rejected.
func CSSVarsStyle(cfg *theme.RendererConfig) (string, error) {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return "", nil
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		value := strings.TrimSpace(cfg.CSSVars[key])
		if strings.ContainsAny(value, "<>{};") {
			return "", fmt.Errorf("render: theme %q: unsafe value for %s", cfg.Theme, key)
		}
		b.WriteString("  ")
		b.WriteString(cssIdent(key))
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String(), nil
}

// cssIdent escapes characters that are not valid in a custom property name,
// so the token "surface.bg" is written as --surface\.bg.
func cssIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '-' || r == '_' || r > unicode.MaxASCII || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}
