// Package markdown renders builder documentation as GitHub flavoured
// Markdown: headings, bullet lists and pipe tables.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithKeyboardTitle overrides the heading used for the keyboard table.
func WithKeyboardTitle(title string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(title) != "" {
			r.keyboardTitle = title
		}
	}
}

// WithLongTypes toggles the fenced blocks that expand complex prop types.
func WithLongTypes(enabled bool) Option {
	return func(r *Renderer) {
		r.longTypes = enabled
	}
}

// Renderer emits Markdown. It holds no per-request state and is safe for
// concurrent use.
type Renderer struct {
	keyboardTitle string
	longTypes     bool
}

var (
	_ render.Renderer    = (*Renderer)(nil)
	_ render.Extensioner = (*Renderer)(nil)
)

// New constructs the Markdown renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		keyboardTitle: "Keyboard Interactions",
		longTypes:     true,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name returns the registry key "markdown".
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the MIME type of rendered documents.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Extension returns the file extension used when writing documents.
func (r *Renderer) Extension() string {
	return ".md"
}

// Render writes the builder documentation as a Markdown page with tables
// for props, states, elements and keyboard interactions.
func (r *Renderer) Render(ctx context.Context, data content.BuilderData, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder, ok := data.Builder()
	if !ok {
		return nil, fmt.Errorf("markdown renderer: builder data has no builder schema")
	}
	data = render.ApplySections(data, options)
	builder, _ = data.Builder()

	w := &writer{opts: options}
	w.heading(1, builder.Title)

	if len(data.Features) > 0 {
		w.heading(2, "Features")
		for _, feature := range data.Features {
			w.line("- " + feature)
		}
		w.blank()
	}

	if len(builder.Props) > 0 {
		w.heading(2, "Props")
		t := newTable("Prop", "Type", "Default", "Description")
		for _, prop := range builder.Props {
			t.AppendRow(table.Row{code(prop.Name), code(prop.Type.String()), defaultCell(prop), prop.Description})
		}
		w.table(t)
		if r.longTypes {
			for _, prop := range builder.Props {
				if prop.LongType == "" {
					continue
				}
				w.heading(3, code(prop.Name))
				w.line("```ts")
				w.line(prop.LongType)
				w.line("```")
				w.blank()
			}
		}
	}

	if len(builder.Options) > 0 {
		w.heading(2, "Options")
		names := make([]string, 0, len(builder.Options))
		for _, name := range builder.OptionNames() {
			names = append(names, code(name))
		}
		w.line("These props are also returned as reactive stores via `options`: " + strings.Join(names, ", ") + ".")
		w.blank()
	}

	if len(builder.States) > 0 {
		w.heading(2, "States")
		t := newTable("State", "Type", "Description")
		for _, state := range builder.States {
			t.AppendRow(table.Row{code(state.Name), code(state.Type), state.Description})
		}
		w.table(t)
	}

	if len(builder.Elements) > 0 {
		w.heading(2, "Elements")
		t := newTable("Element", "Description")
		for _, el := range builder.Elements {
			t.AppendRow(table.Row{code(el.Name), el.Description})
		}
		w.table(t)
	}

	for _, el := range data.Elements() {
		w.heading(3, el.Title)
		if el.Description != "" {
			w.line(el.Description)
			w.blank()
		}
		if len(el.DataAttributes) > 0 {
			t := newTable("Data Attribute", "Value")
			for _, attr := range el.DataAttributes {
				t.AppendRow(table.Row{code(attr.Name), attr.Value})
			}
			w.table(t)
		}
	}

	if len(data.Keyboard) > 0 {
		w.heading(2, r.keyboardTitle)
		t := newTable("Key", "Behavior")
		for _, entry := range data.Keyboard {
			t.AppendRow(table.Row{"<kbd>" + entry.Key + "</kbd>", entry.Behavior})
		}
		w.table(t)
	}

	return []byte(strings.TrimRight(w.b.String(), "\n") + "\n"), nil
}

type writer struct {
	b    strings.Builder
	opts render.RenderOptions
}

func (w *writer) heading(depth int, text string) {
	w.b.WriteString(strings.Repeat("#", w.opts.Heading(depth)))
	w.b.WriteString(" ")
	w.b.WriteString(text)
	w.b.WriteString("\n\n")
}

func (w *writer) line(text string) {
	w.b.WriteString(text)
	w.b.WriteString("\n")
}

func (w *writer) blank() {
	w.b.WriteString("\n")
}

func (w *writer) table(t table.Writer) {
	w.b.WriteString(t.RenderMarkdown())
	w.b.WriteString("\n\n")
}

func newTable(headers ...string) table.Writer {
	t := table.NewWriter()
	row := make(table.Row, 0, len(headers))
	for _, h := range headers {
		row = append(row, h)
	}
	t.AppendHeader(row)
	return t
}

func code(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}

func defaultCell(prop content.Prop) string {
	if !prop.HasDefault() {
		return "-"
	}
	return code(prop.Default)
}
