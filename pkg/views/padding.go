package views

import (
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Padding adds empty space around its child. The child is sized in the
// space left after the insets are taken away.
type Padding struct {
	Insets layout.EdgeInsets
	Child  core.View
}

// Padded wraps child with the given insets.
func Padded(insets layout.EdgeInsets, child core.View) Padding {
	return Padding{Insets: insets, Child: child}
}

// PaddingAll wraps child with uniform padding on all sides.
func PaddingAll(value float64, child core.View) Padding {
	return Padded(layout.EdgeInsetsAll(value), child)
}

// PaddingSymmetric wraps child with horizontal and vertical padding.
func PaddingSymmetric(horizontal, vertical float64, child core.View) Padding {
	return Padded(layout.EdgeInsetsSymmetric(horizontal, vertical), child)
}

// PaddingHorizontal pads only the left and right sides.
func PaddingHorizontal(value float64, child core.View) Padding {
	return Padded(layout.EdgeInsets{Left: value, Right: value}, child)
}

// PaddingVertical pads only the top and bottom sides.
func PaddingVertical(value float64, child core.View) Padding {
	return Padded(layout.EdgeInsets{Top: value, Bottom: value}, child)
}

func (p Padding) Build(*core.Context) []core.View {
	return []core.View{p.Child}
}

func (p Padding) Size(c layout.Constraints, children []core.Sizer) graphics.Size {
	insets := p.Insets.Size()
	return children[0].Size(c.Shrink(insets)).Add(insets)
}

func (p Padding) Layout(l layout.Layout, _ []core.Sizer) []layout.Layout {
	return []layout.Layout{{
		Position: p.Insets.TopLeft(),
		Size:     l.Size.Sub(p.Insets.Size()).Max(graphics.Size{}),
	}}
}

func (p Padding) Draw(l layout.Layout, painter graphics.Painter, children []core.Drawer) {
	core.DrawChildren(l, painter, children)
}

func (p Padding) Interact(_ *core.Context, l layout.Layout, i core.Interaction, children []core.Interactor) bool {
	return core.InteractChildren(l, i, children)
}
