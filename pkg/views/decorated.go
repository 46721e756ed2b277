package views

import (
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Decoration paints over a rectangle of the given size at the origin.
type Decoration interface {
	Paint(size graphics.Size, p graphics.Painter)
}

// Color fills the whole rectangle.
type Color graphics.Color

func (c Color) Paint(size graphics.Size, p graphics.Painter) {
	p.DrawRect(graphics.Offset{}, size, graphics.Fill(graphics.Color(c)))
}

// Border strokes the outline of the rectangle.
type Border struct {
	Width float64
	Color graphics.Color
}

func (b Border) Paint(size graphics.Size, p graphics.Painter) {
	p.DrawRect(graphics.Offset{}, size, graphics.Stroke(b.Color, b.Width))
}

// BoxDecoration combines a fill and an optional border, both rounded by
// Radius. A transparent Color skips the fill.
type BoxDecoration struct {
	Color     graphics.Color
	Border    *Border
	Radius    float64
	Smoothing float64
}

func (d BoxDecoration) Paint(size graphics.Size, p graphics.Painter) {
	if d.Color.Alpha() > 0 {
		d.shape(size, p, graphics.Fill(d.Color))
	}
	if d.Border != nil {
		d.shape(size, p, graphics.Stroke(d.Border.Color, d.Border.Width))
	}
}

func (d BoxDecoration) shape(size graphics.Size, p graphics.Painter, paint graphics.Paint) {
	if d.Radius == 0 {
		p.DrawRect(graphics.Offset{}, size, paint)
		return
	}
	p.DrawRoundedRect(graphics.Offset{}, size, d.Radius, d.Smoothing, paint)
}

// Decorated paints a decoration behind its child, or over it when
// Foreground is set. It takes its child's size.
type Decorated struct {
	Decoration Decoration
	Foreground bool
	Child      core.View
}

// Background paints d behind child.
func Background(d Decoration, child core.View) Decorated {
	return Decorated{Decoration: d, Child: child}
}

// Foreground paints d over child.
func Foreground(d Decoration, child core.View) Decorated {
	return Decorated{Decoration: d, Foreground: true, Child: child}
}

// Bordered strokes a border of width and color over child.
func Bordered(width float64, color graphics.Color, child core.View) Decorated {
	return Foreground(Border{Width: width, Color: color}, child)
}

func (d Decorated) Build(*core.Context) []core.View {
	return []core.View{d.Child}
}

func (d Decorated) Size(c layout.Constraints, children []core.Sizer) graphics.Size {
	return children[0].Size(c)
}

func (d Decorated) Layout(l layout.Layout, children []core.Sizer) []layout.Layout {
	return core.FillChildren(l, len(children))
}

func (d Decorated) Draw(l layout.Layout, p graphics.Painter, children []core.Drawer) {
	p.Translate(l.Position, func(p graphics.Painter) {
		if !d.Foreground {
			d.Decoration.Paint(l.Size, p)
		}
		children[0].Draw(p)
		if d.Foreground {
			d.Decoration.Paint(l.Size, p)
		}
	})
}

func (d Decorated) Interact(_ *core.Context, l layout.Layout, i core.Interaction, children []core.Interactor) bool {
	return core.InteractChildren(l, i, children)
}
