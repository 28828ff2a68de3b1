package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-builderdocs/pkg/catalog"
	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render"
	"github.com/goliatone/go-builderdocs/pkg/renderers/data"
	"github.com/goliatone/go-builderdocs/pkg/renderers/html"
	"github.com/goliatone/go-builderdocs/pkg/renderers/markdown"
)

// DefaultRenderer is used when a request does not name a renderer.
const DefaultRenderer = "markdown"

// Option customises the generator configuration.
type Option func(*Generator)

// WithCatalog injects the builder catalog. Defaults to catalog.Default().
func WithCatalog(reg *catalog.Registry) Option {
	return func(g *Generator) {
		g.catalog = reg
	}
}

// WithRegistry injects a renderer registry. Defaults to a registry holding
// the markdown, html, json and yaml renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithLogger sets the logger used for progress and warnings.
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithTheme supplies a resolved theme applied to requests that do not carry
// one.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(g *Generator) {
		g.theme = cfg
	}
}

// WithThemeSelector resolves themes through selector. name and variant pick
// the default theme; requests may name another.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(g *Generator) {
		g.themeSelector = selector
		g.themeName = name
		g.themeVariant = variant
	}
}

// WithThemeProvider wraps a theme registry in a theme.Selector using the
// provided defaults.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(g *Generator) {
		if provider == nil {
			return
		}
		g.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
		g.themeName = defaultTheme
		g.themeVariant = defaultVariant
	}
}

// WithThemeFallbacks adds partial keys resolved from the theme, with the
// template used when the theme does not define them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(g *Generator) {
		if g.themeFallbacks == nil {
			g.themeFallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			g.themeFallbacks[key] = value
		}
	}
}

// Generator renders builder documentation from a catalog.
type Generator struct {
	catalog         *catalog.Registry
	registry        *render.Registry
	defaultRenderer string
	logger          log.Logger
	theme           *theme.RendererConfig
	themeSelector   theme.ThemeSelector
	themeName       string
	themeVariant    string
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: DefaultRenderer,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.catalog == nil {
		g.catalog = catalog.Default()
	}
	if g.logger == nil {
		g.logger = log.NewNopLogger()
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = DefaultRenderer
	}
	if g.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			g.initialiseErr = err
			return
		}
		g.registry = registry
	}

	fallbacks := html.ThemeFallbacks()
	for key, value := range g.themeFallbacks {
		fallbacks[key] = value
	}
	g.themeFallbacks = fallbacks

	if g.theme == nil && g.themeSelector != nil {
		cfg, err := render.ResolveTheme(g.themeSelector, g.themeName, g.themeVariant, g.themeFallbacks)
		if err != nil {
			g.initialiseErr = fmt.Errorf("site: %w", err)
			return
		}
		g.theme = cfg
	}
}

// DefaultRegistry returns a render registry holding the built-in renderers.
// htmlOptions configure the html renderer, e.g. html.WithStandalone(true).
func DefaultRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, fmt.Errorf("site: configure html renderer: %w", err)
	}
	for _, r := range []render.Renderer{
		markdown.New(),
		htmlRenderer,
		data.NewJSON(),
		data.NewYAML(),
	} {
		if err := registry.Register(r); err != nil {
			return nil, fmt.Errorf("site: %w", err)
		}
	}
	return registry, nil
}

// Theme returns the default theme applied to requests, or nil.
func (g *Generator) Theme() *theme.RendererConfig {
	return g.theme
}

// Catalog returns the catalog backing the generator.
func (g *Generator) Catalog() *catalog.Registry {
	return g.catalog
}

// Renderers lists the names of the available renderers.
func (g *Generator) Renderers() []string {
	if g.registry == nil {
		return nil
	}
	return g.registry.List()
}

// RendererForPath picks the renderer whose output extension matches path,
// e.g. "docs/dialog.html" selects html.
func (g *Generator) RendererForPath(path string) (string, bool) {
	if g.registry == nil {
		return "", false
	}
	return g.registry.ForExtension(filepath.Ext(path))
}

// Request describes a single builder render.
type Request struct {
	// Builder names the catalogued builder to render.
	Builder string

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// Options carries per-request section selection, theme and heading
	// offset.
	Options render.RenderOptions

	// ThemeName and ThemeVariant select a theme through the configured
	// selector when Options.Theme is nil. Empty values use the defaults.
	ThemeName    string
	ThemeVariant string
}

// Generate renders a single builder.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("site: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if req.Builder == "" {
		return nil, errors.New("site: builder name is required")
	}

	docs, err := g.catalog.Get(req.Builder)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	opts := req.Options
	if opts.Theme == nil {
		if opts.Theme, err = g.themeFor(req.ThemeName, req.ThemeVariant); err != nil {
			return nil, err
		}
	}
	return g.render(ctx, renderer, docs, opts)
}

// WriteAll renders every catalogued builder with the named renderer into dir,
// writing <builder><ext> per builder. It returns the written paths in catalog
// order. Context cancellation is checked between builders.
func (g *Generator) WriteAll(ctx context.Context, dir, rendererName string, options ...render.RenderOptions) ([]string, error) {
	if ctx == nil {
		return nil, errors.New("site: context is required")
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, errors.New("site: output directory is required")
	}
	renderer, err := g.rendererFor(rendererName)
	if err != nil {
		return nil, err
	}
	var opts render.RenderOptions
	if len(options) > 0 {
		opts = options[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("site: create output directory: %w", err)
	}

	ext := render.ExtensionFor(renderer)
	names := g.catalog.List()
	written := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		docs, err := g.catalog.Get(name)
		if err != nil {
			level.Warn(g.logger).Log("msg", "skipping builder", "builder", name, "err", err)
			continue
		}

		level.Info(g.logger).Log("msg", "rendering builder", "builder", name, "renderer", renderer.Name())
		payload, err := g.render(ctx, renderer, docs, opts)
		if err != nil {
			return written, fmt.Errorf("site: render %q: %w", name, err)
		}

		path := filepath.Join(dir, name+ext)
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return written, fmt.Errorf("site: write %q: %w", path, err)
		}
		level.Info(g.logger).Log("msg", "wrote builder", "builder", name, "path", path, "bytes", len(payload))
		written = append(written, path)
	}
	return written, nil
}

func (g *Generator) render(ctx context.Context, renderer render.Renderer, docs content.BuilderData, opts render.RenderOptions) ([]byte, error) {
	if opts.Theme == nil {
		opts.Theme = g.theme
	}
	payload, err := renderer.Render(ctx, docs, opts)
	if err != nil {
		return nil, fmt.Errorf("site: %s renderer: %w", renderer.Name(), err)
	}
	return payload, nil
}

func (g *Generator) themeFor(name, variant string) (*theme.RendererConfig, error) {
	if name == "" && variant == "" {
		return g.theme, nil
	}
	if g.themeSelector == nil {
		return nil, fmt.Errorf("site: theme %q requested but no theme selector is configured", name)
	}
	if name == "" {
		name = g.themeName
	}
	if variant == "" && name == g.themeName {
		variant = g.themeVariant
	}
	cfg, err := render.ResolveTheme(g.themeSelector, name, variant, g.themeFallbacks)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	return cfg, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	return renderer, nil
}
