package render

import (
	"context"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

// Renderer converts builder documentation into a byte representation
// (Markdown, HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, data content.BuilderData, options RenderOptions) ([]byte, error)
}

// Extensioner is implemented by renderers that know the file extension their
// output should be written with.
type Extensioner interface {
	Extension() string
}

// ExtensionFor returns the file extension for a renderer's output, falling
// back to the renderer name.
func ExtensionFor(r Renderer) string {
	if ext, ok := r.(Extensioner); ok && ext.Extension() != "" {
		return ext.Extension()
	}
	return "." + r.Name()
}
