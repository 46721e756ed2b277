package views

import (
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
	"github.com/flux-ui/flux/pkg/text"
)

// Label displays a single style of text at its natural size.
type Label struct {
	core.Leaf
	Content string
	Style   graphics.TextStyle
	// Wrap breaks lines at word boundaries to fit this width. Zero keeps
	// each paragraph on one line.
	Wrap float64
}

// Text returns a black label at the default font size.
func Text(content string) Label {
	return Label{
		Content: content,
		Style:   graphics.TextStyle{Color: graphics.ColorBlack, FontSize: text.FallbackSize()},
	}
}

// WithSize returns a copy of l with the given font size.
func (l Label) WithSize(size float64) Label {
	l.Style.FontSize = size
	return l
}

// WithColor returns a copy of l with the given text color.
func (l Label) WithColor(c graphics.Color) Label {
	l.Style.Color = c
	return l
}

// WithWrap returns a copy of l that wraps at width.
func (l Label) WithWrap(width float64) Label {
	l.Wrap = width
	return l
}

func (l Label) measure() *graphics.TextLayout {
	return text.Layout(l.Content, l.Style, l.Wrap)
}

// Size is the measured text size on every free axis.
func (l Label) Size(c layout.Constraints, _ []core.Sizer) graphics.Size {
	s := l.measure().Size
	return c.Resolve(s, s, s)
}

func (l Label) Draw(lay layout.Layout, p graphics.Painter, _ []core.Drawer) {
	p.DrawText(l.measure(), lay.Position, lay.Size.Width)
}
