package core

import (
	"reflect"
	"strings"

	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// View is the contract every node type implements.
type View interface {
	// Build returns the declarative children. It runs with a Context scoped
	// to the node, so state created here belongs to the node.
	Build(ctx *Context) []View
	// Size returns the node's size under c. It must return the same result
	// for the same constraints until the next build.
	Size(c layout.Constraints, children []Sizer) graphics.Size
	// Layout returns one rectangle per child, relative to this node's origin.
	Layout(l layout.Layout, children []Sizer) []layout.Layout
	// Draw paints the node. l.Position is in the parent's coordinates; views
	// translate by it before drawing children.
	Draw(l layout.Layout, p graphics.Painter, children []Drawer)
	// Interact handles a pointer interaction given in the parent's
	// coordinates and reports whether it was consumed.
	Interact(ctx *Context, l layout.Layout, i Interaction, children []Interactor) bool
}

// Sizer computes a child's size on demand. Results are cached per node.
type Sizer = layout.Sizer

// Drawer paints one child.
type Drawer interface {
	Draw(p graphics.Painter)
}

// Interactor dispatches an interaction, given in the parent's local
// coordinates, to one child.
type Interactor interface {
	Interact(i Interaction) bool
}

// Equaler lets a view define its own reuse test. Equal is only called with
// a value of the same concrete type.
type Equaler interface {
	Equal(other View) bool
}

// DebugNamer overrides the name reported by DebugName.
type DebugNamer interface {
	DebugName() string
}

// DebugName returns a diagnostic name for v.
func DebugName(v View) string {
	if v == nil {
		return "<nil>"
	}
	if n, ok := v.(DebugNamer); ok {
		return n.DebugName()
	}
	return strings.TrimLeft(reflect.TypeOf(v).String(), "*")
}

// Leaf supplies the default behavior of a childless view. Embed it and
// override what the view needs.
type Leaf struct{}

// Build returns no children.
func (Leaf) Build(*Context) []View { return nil }

// Size is zero on free axes and the imposed value on fixed ones.
func (Leaf) Size(c layout.Constraints, _ []Sizer) graphics.Size {
	return c.Resolve(graphics.Size{}, graphics.Size{}, graphics.Size{})
}

// Layout returns no child layouts.
func (Leaf) Layout(layout.Layout, []Sizer) []layout.Layout { return nil }

// Draw paints nothing.
func (Leaf) Draw(layout.Layout, graphics.Painter, []Drawer) {}

// Interact consumes nothing.
func (Leaf) Interact(*Context, layout.Layout, Interaction, []Interactor) bool { return false }

// DrawChildren translates p to l.Position and draws every child in order.
func DrawChildren(l layout.Layout, p graphics.Painter, children []Drawer) {
	if len(children) == 0 {
		return
	}
	p.Translate(l.Position, func(p graphics.Painter) {
		for _, child := range children {
			child.Draw(p)
		}
	})
}

// InteractChildren moves i into l's local coordinates and offers it to each
// child in order, stopping at the first that consumes it.
func InteractChildren(l layout.Layout, i Interaction, children []Interactor) bool {
	local := i.Translate(l.Position)
	for _, child := range children {
		if child.Interact(local) {
			return true
		}
	}
	return false
}

// FillChildren lays every child over the full area of l.
func FillChildren(l layout.Layout, n int) []layout.Layout {
	layouts := make([]layout.Layout, n)
	for i := range layouts {
		layouts[i] = layout.Layout{Size: l.Size}
	}
	return layouts
}
