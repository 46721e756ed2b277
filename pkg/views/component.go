package views

import (
	"reflect"
	"strings"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Component is a view defined by composition: Body returns a single view
// built from the component's fields and state.
type Component interface {
	Body(ctx *core.Context) core.View
}

// ComponentView adapts a Component to the View contract. Each component type
// gets its own ComponentView type, so components of different types are
// never paired with each other's nodes.
type ComponentView[C Component] struct {
	C C
}

// Of adapts c for use as a view.
func Of[C Component](c C) ComponentView[C] {
	return ComponentView[C]{C: c}
}

// DebugName reports the component's type name.
func (v ComponentView[C]) DebugName() string {
	return strings.TrimLeft(reflect.TypeOf(v.C).String(), "*")
}

func (v ComponentView[C]) Build(ctx *core.Context) []core.View {
	return []core.View{v.C.Body(ctx)}
}

func (v ComponentView[C]) Size(c layout.Constraints, children []core.Sizer) graphics.Size {
	return children[0].Size(c)
}

func (v ComponentView[C]) Layout(l layout.Layout, children []core.Sizer) []layout.Layout {
	return core.FillChildren(l, len(children))
}

func (v ComponentView[C]) Draw(l layout.Layout, p graphics.Painter, children []core.Drawer) {
	core.DrawChildren(l, p, children)
}

func (v ComponentView[C]) Interact(_ *core.Context, l layout.Layout, i core.Interaction, children []core.Interactor) bool {
	return core.InteractChildren(l, i, children)
}
