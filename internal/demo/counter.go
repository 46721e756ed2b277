package demo

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/views"
)

func zero() int { return 0 }

// Counter increments a number each time the blue square is clicked. Only
// CountLabel reads the number.
type Counter struct{}

func (Counter) Body(ctx *core.Context) core.View {
	count := core.UseState(ctx, zero)
	return views.PaddingAll(16, views.Column(
		views.Of(CountLabel{Count: count}),
		views.Row(views.OnClick(func(ctx *core.Context) {
			core.Update(ctx, count, func(n *int) { *n++ })
		}, views.Background(views.Color(graphics.ColorBlue), views.NewSpacer().Width(100).Height(100)))),
		views.Text("Click the square"),
	).WithSpacing(8))
}

// CountLabel shows the current count.
type CountLabel struct {
	Count core.Binding[int]
}

func (c CountLabel) Body(ctx *core.Context) core.View {
	return views.Text(fmt.Sprint(core.Read(ctx, c.Count)))
}

// Names lists the demos accepted by Lookup.
var Names = []string{"todo", "counter"}

// Lookup returns the root view of the named demo.
func Lookup(name string) (core.View, bool) {
	switch name {
	case "todo":
		return views.Of(TodoApp{}), true
	case "counter":
		return views.Of(Counter{}), true
	}
	return nil, false
}
