package views

import (
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Flex lays its children out in a line along Axis with Spacing between
// neighbors. When the line is longer or shorter than the space it is given,
// the difference is shared among children in proportion to how far each can
// shrink toward its minimum or grow toward its maximum.
type Flex struct {
	Axis     graphics.Axis
	Spacing  float64
	Children []core.View
}

// Row creates a horizontal Flex.
func Row(children ...core.View) Flex {
	return Flex{Axis: graphics.Horizontal, Children: children}
}

// Column creates a vertical Flex.
func Column(children ...core.View) Flex {
	return Flex{Axis: graphics.Vertical, Children: children}
}

// WithSpacing returns a copy of f with the given gap between children.
func (f Flex) WithSpacing(spacing float64) Flex {
	f.Spacing = spacing
	return f
}

func (f Flex) line() layout.Flex {
	return layout.Flex{Axis: f.Axis, Spacing: f.Spacing}
}

func (f Flex) Build(*core.Context) []core.View {
	return f.Children
}

func (f Flex) Size(c layout.Constraints, children []core.Sizer) graphics.Size {
	return f.line().Size(c, children)
}

func (f Flex) Layout(l layout.Layout, children []core.Sizer) []layout.Layout {
	return f.line().Layout(l.Size, children)
}

func (f Flex) Draw(l layout.Layout, p graphics.Painter, children []core.Drawer) {
	core.DrawChildren(l, p, children)
}

func (f Flex) Interact(_ *core.Context, l layout.Layout, i core.Interaction, children []core.Interactor) bool {
	return core.InteractChildren(l, i, children)
}
