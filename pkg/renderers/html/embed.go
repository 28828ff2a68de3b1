package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// ThemePartialKey names the theme partial that replaces the page template.
const ThemePartialKey = "docs.builder"

// ThemeStylesheetKey names the theme asset linked from standalone pages.
const ThemeStylesheetKey = "docs.stylesheet"

const defaultTemplate = "templates/builder.tmpl"

// TemplatesFS exposes the embedded template bundle for consumers that want to
// extend or override it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// ThemeFallbacks maps the theme partial keys the renderer reads to the
// embedded templates used when a theme does not override them.
func ThemeFallbacks() map[string]string {
	return map[string]string{ThemePartialKey: defaultTemplate}
}
