// Package builderdocs renders documentation for headless UI builders.
//
// The root package is a thin facade over pkg/site, pkg/catalog and the
// built-in renderers so callers can start with a single import.
package builderdocs

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-builderdocs/pkg/catalog"
	"github.com/goliatone/go-builderdocs/pkg/render"
	"github.com/goliatone/go-builderdocs/pkg/renderers/html"
	"github.com/goliatone/go-builderdocs/pkg/site"
)

// RenderOptions aliases render.RenderOptions for callers configuring sections,
// themes and heading offsets.
type RenderOptions = render.RenderOptions

// Request aliases site.Request.
type Request = site.Request

// NewGenerator exposes the site generator constructor from the top-level
// module.
func NewGenerator(options ...site.Option) *site.Generator {
	return site.New(options...)
}

// Render renders a catalogued builder with the named renderer. An empty
// renderer name selects markdown.
func Render(ctx context.Context, builder, rendererName string, options ...site.Option) ([]byte, error) {
	gen := site.New(options...)
	return gen.Generate(ctx, site.Request{
		Builder:  builder,
		Renderer: rendererName,
	})
}

// RenderWithOptions renders a builder applying per-request render options.
func RenderWithOptions(ctx context.Context, builder, rendererName string, opts RenderOptions, options ...site.Option) ([]byte, error) {
	gen := site.New(options...)
	return gen.Generate(ctx, site.Request{
		Builder:  builder,
		Renderer: rendererName,
		Options:  opts,
	})
}

// WithDataFS loads extra builder documentation from JSON/YAML files and merges
// it with the built-in builders. The returned option configures the generator
// catalog.
func WithDataFS(fsys fs.FS) (site.Option, error) {
	loaded, err := catalog.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	reg := catalog.Default()
	if err := reg.Merge(loaded); err != nil {
		return nil, fmt.Errorf("builderdocs: merge data: %w", err)
	}
	return site.WithCatalog(reg), nil
}

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
