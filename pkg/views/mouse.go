package views

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// MouseState is the pointer state a MouseListener tracks for its area.
type MouseState uint8

const (
	// MouseIdle means the pointer is outside and no press started inside.
	MouseIdle MouseState = iota
	// MouseHover means the pointer is inside with the button up.
	MouseHover
	// MousePressed means a press started inside and has not been released.
	MousePressed
)

func (s MouseState) String() string {
	switch s {
	case MouseIdle:
		return "idle"
	case MouseHover:
		return "hover"
	case MousePressed:
		return "pressed"
	default:
		return fmt.Sprintf("MouseState(%d)", int(s))
	}
}

// MouseListener tracks the pointer over its child and reports every state
// transition to OnMouse. The child sees each interaction first; only
// interactions the child leaves unconsumed drive the listener.
//
// Transitions:
//   - idle, move inside: hover (not consumed)
//   - idle or hover, press inside: pressed (consumed)
//   - hover, move outside: idle (not consumed)
//   - pressed, release inside: hover (consumed, a click)
//   - pressed, release outside: idle (consumed)
type MouseListener struct {
	OnMouse func(ctx *core.Context, prev, next MouseState)
	Child   core.View
}

// OnMouse wraps child with a listener that calls fn on every transition.
func OnMouse(fn func(ctx *core.Context, prev, next MouseState), child core.View) MouseListener {
	return MouseListener{OnMouse: fn, Child: child}
}

// OnClick wraps child with a listener that calls fn when a press that began
// inside is released inside.
func OnClick(fn func(ctx *core.Context), child core.View) MouseListener {
	return OnMouse(func(ctx *core.Context, prev, next MouseState) {
		if prev == MousePressed && next == MouseHover {
			fn(ctx)
		}
	}, child)
}

func idle() MouseState { return MouseIdle }

func (m MouseListener) Build(ctx *core.Context) []core.View {
	core.UseState(ctx, idle)
	return []core.View{m.Child}
}

func (m MouseListener) Size(c layout.Constraints, children []core.Sizer) graphics.Size {
	return children[0].Size(c)
}

func (m MouseListener) Layout(l layout.Layout, children []core.Sizer) []layout.Layout {
	return core.FillChildren(l, len(children))
}

func (m MouseListener) Draw(l layout.Layout, p graphics.Painter, children []core.Drawer) {
	core.DrawChildren(l, p, children)
}

func (m MouseListener) Interact(ctx *core.Context, l layout.Layout, i core.Interaction, children []core.Interactor) bool {
	local := i.Translate(l.Position)
	for _, child := range children {
		if child.Interact(local) {
			return true
		}
	}
	state := core.UseState(ctx, idle)
	prev := core.Peek(ctx, state)
	next, consumed := transition(prev, local.Kind, local.Inside(l.Size))
	if next != prev {
		core.Set(ctx, state, next)
		if m.OnMouse != nil {
			m.OnMouse(ctx, prev, next)
		}
	}
	return consumed
}

func transition(s MouseState, kind core.InteractionKind, inside bool) (MouseState, bool) {
	switch {
	case kind == core.PointerMove && s == MouseIdle && inside:
		return MouseHover, false
	case kind == core.PointerMove && s == MouseHover && !inside:
		return MouseIdle, false
	case kind == core.PointerDown && s != MousePressed && inside:
		return MousePressed, true
	case kind == core.PointerUp && s == MousePressed:
		if inside {
			return MouseHover, true
		}
		return MouseIdle, true
	}
	return s, false
}
