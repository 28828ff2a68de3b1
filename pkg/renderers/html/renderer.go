// Package html renders builder documentation as HTML using pongo2 templates.
// Descriptions may carry inline Markdown; it is converted with goldmark and
// sanitised with bluemonday before reaching the templates.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render"
	rendertemplate "github.com/goliatone/go-builderdocs/pkg/render/template"
	"github.com/goliatone/go-builderdocs/pkg/render/template/pongo"
)

// Option customises the HTML renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	standalone       bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStandalone wraps output in a full HTML document with theme styles.
// Fragments are the default.
func WithStandalone(enabled bool) Option {
	return func(cfg *config) {
		cfg.standalone = enabled
	}
}

// Renderer renders builder documentation through pongo2 templates.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	standalone bool
}

var (
	_ render.Renderer    = (*Renderer)(nil)
	_ render.Extensioner = (*Renderer)(nil)
)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, standalone: cfg.standalone}, nil
}

// Name returns the registry key "html".
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the MIME type of rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Extension returns the file extension used when writing pages.
func (r *Renderer) Extension() string {
	return ".html"
}

// Render produces an HTML fragment, or a full document when standalone, for
// the builder in data. Theme partials may replace the page template.
func (r *Renderer) Render(ctx context.Context, data content.BuilderData, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := buildPage(render.ApplySections(data, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	themed, err := buildTheme(options.Theme)
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	tmpl := defaultTemplate
	if options.Theme != nil {
		if partial := strings.TrimSpace(options.Theme.Partials[ThemePartialKey]); partial != "" {
			tmpl = partial
		}
	}

	result, err := r.templates.RenderTemplate(tmpl, map[string]any{
		"page":       page,
		"theme":      themed,
		"standalone": r.standalone,
		"levels": map[string]any{
			"title":   options.Heading(1),
			"section": options.Heading(2),
			"element": options.Heading(3),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
