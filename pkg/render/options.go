package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request settings renderers use to shape their
// output without mutating the builder data.
type RenderOptions struct {
	// Sections restricts output to the listed sections. Empty renders all.
	Sections []Section
	// Theme carries resolved theme partials, tokens and assets. Renderers that
	// have no visual output ignore it.
	Theme *theme.RendererConfig
	// HeadingOffset shifts heading levels so output can be embedded in a
	// larger document (0 renders the builder title as a level-1 heading).
	HeadingOffset int
}

// Heading returns the heading level for a logical depth, clamped to 1..6.
func (o RenderOptions) Heading(depth int) int {
	level := depth + o.HeadingOffset
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
