package core

import (
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// box is a rigid leaf of W x H.
type box struct {
	Leaf
	Name string
	W, H float64
}

func (b box) Size(c layout.Constraints, _ []Sizer) graphics.Size {
	s := graphics.Size{Width: b.W, Height: b.H}
	return c.Resolve(s, s, s)
}

func (b box) Draw(l layout.Layout, p graphics.Painter, _ []Drawer) {
	p.DrawRect(l.Position, l.Size, graphics.Fill(graphics.ColorBlack))
}

type t1 struct{ box }
type t2 struct{ box }
type t3 struct{ box }
type t4 struct{ box }

// column stacks children vertically.
type column struct {
	Spacing  float64
	Children []View
}

func (c column) Build(*Context) []View { return c.Children }

func (c column) Size(cs layout.Constraints, children []Sizer) graphics.Size {
	return layout.Flex{Axis: graphics.Vertical, Spacing: c.Spacing}.Size(cs, children)
}

func (c column) Layout(l layout.Layout, children []Sizer) []layout.Layout {
	return layout.Flex{Axis: graphics.Vertical, Spacing: c.Spacing}.Layout(l.Size, children)
}

func (c column) Draw(l layout.Layout, p graphics.Painter, children []Drawer) {
	DrawChildren(l, p, children)
}

func (c column) Interact(_ *Context, l layout.Layout, i Interaction, children []Interactor) bool {
	return InteractChildren(l, i, children)
}

// stack lays every child over its full area.
type stack struct{ column }

func (s stack) Size(c layout.Constraints, children []Sizer) graphics.Size {
	var size graphics.Size
	for _, child := range children {
		size = size.Max(child.Size(c))
	}
	return size
}

func (s stack) Layout(l layout.Layout, children []Sizer) []layout.Layout {
	return FillChildren(l, len(children))
}

// holder owns an int and a string entry and hands both to Kids.
type holder struct {
	column
	X    *Binding[int]
	Y    *Binding[string]
	Kids func(x Binding[int], y Binding[string]) []View
}

func (h holder) Build(ctx *Context) []View {
	x := UseState(ctx, func() int { return 0 })
	y := UseState(ctx, func() string { return "" })
	if h.X != nil {
		*h.X = x
	}
	if h.Y != nil {
		*h.Y = y
	}
	return h.Kids(x, y)
}

// reader renders a bar whose height follows B.
type reader struct {
	Leaf
	B    Binding[int]
	Unit float64
}

func (r reader) Build(ctx *Context) []View {
	v := Read(ctx, r.B)
	return []View{box{Name: "bar", W: 10, H: float64(v) * r.Unit}}
}

func (r reader) Size(c layout.Constraints, children []Sizer) graphics.Size {
	return children[0].Size(c)
}

func (r reader) Layout(l layout.Layout, children []Sizer) []layout.Layout {
	return FillChildren(l, len(children))
}

func (r reader) Draw(l layout.Layout, p graphics.Painter, children []Drawer) {
	DrawChildren(l, p, children)
}

// switcher picks its children from Variants by the value of Mode.
type switcher struct {
	column
	Mode     Binding[int]
	Variants [][]View
}

func (s switcher) Build(ctx *Context) []View {
	return s.Variants[Read(ctx, s.Mode)]
}

// frame has a fixed size regardless of its child.
type frame struct {
	reader
	W, H float64
}

func (f frame) Build(*Context) []View { return []View{f.reader} }

func (f frame) Size(c layout.Constraints, _ []Sizer) graphics.Size {
	s := graphics.Size{Width: f.W, Height: f.H}
	return c.Resolve(s, s, s)
}

// stateful owns a float entry and depends on it.
type stateful struct{ box }

func (s stateful) Build(ctx *Context) []View {
	b := UseState(ctx, func() float64 { return 1 })
	_ = Read(ctx, b)
	return nil
}

// hitBox records presses that land inside it.
type hitBox struct {
	box
	Log *[]string
}

func (h hitBox) Interact(_ *Context, l layout.Layout, i Interaction, _ []Interactor) bool {
	if i.Kind != PointerDown || !i.Translate(l.Position).Inside(l.Size) {
		return false
	}
	*h.Log = append(*h.Log, h.Name)
	return true
}

// lazyReader owns an int entry it only reads when pressed.
type lazyReader struct {
	box
	Out  *Binding[int]
	Seen *int
}

func (r lazyReader) Build(ctx *Context) []View {
	*r.Out = UseState(ctx, func() int { return 0 })
	return nil
}

func (r lazyReader) Interact(ctx *Context, l layout.Layout, i Interaction, _ []Interactor) bool {
	if i.Kind != PointerDown || !i.Translate(l.Position).Inside(l.Size) {
		return false
	}
	*r.Seen = Read(ctx, *r.Out)
	return true
}
