package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	theme "github.com/goliatone/go-theme"
	flag "github.com/spf13/pflag"

	builderdocs "github.com/goliatone/go-builderdocs"
	"github.com/goliatone/go-builderdocs/pkg/openapi"
	"github.com/goliatone/go-builderdocs/pkg/render"
	"github.com/goliatone/go-builderdocs/pkg/renderers/html"
	"github.com/goliatone/go-builderdocs/pkg/site"
)

const schemaVersion = "0.1.0"

type options struct {
	builder     string
	renderer    string
	rendererSet bool
	output      string
	all         bool
	sections    string
	dataDir     string
	schema      bool
	list        bool
	interactive bool
	logLevel    string
	themePath   string
	variant     string
	standalone  bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, surveyPrompter{}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, prompts prompter) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := execute(ctx, opts, stdout, logger, prompts); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("builderdocs-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.builder, "builder", "b", "", "builder to render (dialog, tooltip, ...)")
	fs.StringVarP(&opts.renderer, "renderer", "r", site.DefaultRenderer, "renderer to use (markdown, html, json, yaml)")
	fs.StringVarP(&opts.output, "output", "o", "", "output file, or directory with --all (stdout if empty)")
	fs.BoolVar(&opts.all, "all", false, "render every catalogued builder into --output")
	fs.StringVar(&opts.sections, "sections", "", "comma separated sections to render (default all)")
	fs.StringVar(&opts.dataDir, "data", "", "directory of extra JSON/YAML builder documentation")
	fs.BoolVar(&opts.schema, "schema", false, "print the OpenAPI document describing the data model")
	fs.BoolVar(&opts.list, "list", false, "list builders and renderers")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "choose builder, renderer and sections interactively")
	fs.StringVar(&opts.themePath, "theme", "", "theme manifest (JSON or YAML) applied to html output")
	fs.StringVar(&opts.variant, "theme-variant", "", "variant of the --theme manifest")
	fs.BoolVar(&opts.standalone, "standalone", false, "wrap html output in a full document with theme styles")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error, none)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.rendererSet = fs.Changed("renderer")
	if opts.builder == "" && fs.NArg() > 0 {
		opts.builder = fs.Arg(0)
	}
	return opts, nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var allow level.Option
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	case "none":
		allow = level.AllowNone()
	default:
		return nil, fmt.Errorf("builderdocs-cli: unknown log level %q", lvl)
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

func execute(ctx context.Context, opts options, stdout io.Writer, logger log.Logger, prompts prompter) error {
	if opts.schema {
		payload, err := openapi.MarshalJSON(ctx, schemaVersion)
		if err != nil {
			return err
		}
		return emit(stdout, opts.output, payload)
	}

	genOptions := []site.Option{site.WithLogger(logger)}
	if opts.dataDir != "" {
		dataOpt, err := builderdocs.WithDataFS(os.DirFS(opts.dataDir))
		if err != nil {
			return err
		}
		genOptions = append(genOptions, dataOpt)
	}
	if opts.standalone {
		registry, err := site.DefaultRegistry(html.WithStandalone(true))
		if err != nil {
			return err
		}
		genOptions = append(genOptions, site.WithRegistry(registry))
	}
	if opts.themePath != "" {
		themeOpt, err := loadTheme(opts.themePath, opts.variant)
		if err != nil {
			return err
		}
		genOptions = append(genOptions, themeOpt)
	} else if opts.variant != "" {
		return errors.New("builderdocs-cli: --theme-variant requires --theme")
	}
	gen := builderdocs.NewGenerator(genOptions...)

	if opts.list {
		fmt.Fprintf(stdout, "builders: %s\n", strings.Join(gen.Catalog().List(), ", "))
		fmt.Fprintf(stdout, "renderers: %s\n", strings.Join(gen.Renderers(), ", "))
		return nil
	}

	if opts.interactive {
		if err := choose(ctx, &opts, gen, prompts); err != nil {
			return err
		}
	}

	sections, err := render.ParseSections(opts.sections)
	if err != nil {
		return err
	}
	renderOpts := render.RenderOptions{Sections: sections}

	if opts.all {
		if opts.output == "" {
			return errors.New("builderdocs-cli: --all requires --output directory")
		}
		written, err := gen.WriteAll(ctx, opts.output, opts.renderer, renderOpts)
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "site written", "dir", opts.output, "files", len(written))
		return nil
	}

	if opts.builder == "" {
		return errors.New("builderdocs-cli: --builder is required (or use --all, --list, --interactive)")
	}
	if !opts.rendererSet && !opts.interactive && opts.output != "" {
		if name, ok := gen.RendererForPath(opts.output); ok {
			opts.renderer = name
		}
	}
	payload, err := gen.Generate(ctx, site.Request{
		Builder:  opts.builder,
		Renderer: opts.renderer,
		Options:  renderOpts,
	})
	if err != nil {
		return err
	}
	return emit(stdout, opts.output, payload)
}

func loadTheme(path, variant string) (site.Option, error) {
	manifest, err := theme.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("builderdocs-cli: load theme: %w", err)
	}
	themes := theme.NewRegistry()
	if err := themes.Register(manifest); err != nil {
		return nil, fmt.Errorf("builderdocs-cli: register theme: %w", err)
	}
	return site.WithThemeProvider(themes, manifest.Name, variant), nil
}

func choose(ctx context.Context, opts *options, gen *site.Generator, prompts prompter) error {
	if !opts.all {
		builder, err := prompts.Select(ctx, "Builder", gen.Catalog().List(), opts.builder)
		if err != nil {
			return err
		}
		opts.builder = builder
	}

	renderer, err := prompts.Select(ctx, "Renderer", gen.Renderers(), opts.renderer)
	if err != nil {
		return err
	}
	opts.renderer = renderer

	all := render.AllSections()
	names := make([]string, 0, len(all))
	for _, section := range all {
		names = append(names, string(section))
	}
	picked, err := prompts.MultiSelect(ctx, "Sections", names)
	if err != nil {
		return err
	}
	opts.sections = strings.Join(picked, ",")
	return nil
}

func emit(stdout io.Writer, output string, payload []byte) error {
	if output == "" {
		_, err := stdout.Write(payload)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("builderdocs-cli: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		return fmt.Errorf("builderdocs-cli: write output: %w", err)
	}
	return nil
}
