// Package demo holds the example applications mounted by cmd/fluxdemo and
// exercised end to end by the tests.
package demo

import (
	"fmt"
	"slices"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
	"github.com/flux-ui/flux/pkg/views"
)

// Item spacing and padding used by the todo list.
const (
	ItemSpacing    = 2
	SectionSpacing = 16
	ListPadding    = 16
)

var (
	headerColor   = graphics.RGBA8(223, 223, 223, 200)
	listColor     = graphics.RGBA8(255, 255, 255, 200)
	selectedColor = graphics.RGB(0x40, 0x40, 0x40)
	hoverColor    = graphics.RGB(0xEF, 0xEF, 0xEF)
	pressedColor  = graphics.RGB(0xDF, 0xDF, 0xDF)
)

// Todo is one entry of the list.
type Todo struct {
	Name string
	Done bool
}

// Todos is the list state shared by the list and the add button.
type Todos struct {
	Items []Todo
}

func initialTodos() Todos {
	return Todos{Items: []Todo{{Name: "First"}, {Name: "Second"}, {Name: "Third"}, {Name: "Fourth"}}}
}

func unselected() int { return -1 }

// TodoApp is the root of the todo demo: a title bar strip above the list.
type TodoApp struct{}

func (TodoApp) Body(ctx *core.Context) core.View {
	selected := core.UseState(ctx, unselected)
	todos := core.UseState(ctx, initialTodos)
	return views.Column(
		views.Background(views.Color(headerColor), views.NewSpacer().Height(28)),
		views.Background(views.Color(listColor), views.Of(ListView{Selected: selected, Todos: todos})),
	)
}

// ListView shows the items, a row of sample shapes, and the add button.
// Clicking outside an item clears the selection.
type ListView struct {
	Selected core.Binding[int]
	Todos    core.Binding[Todos]
}

func (l ListView) Body(ctx *core.Context) core.View {
	selected := core.Read(ctx, l.Selected)
	items := core.Read(ctx, l.Todos).Items

	rows := make([]core.View, len(items))
	for i, item := range items {
		rows[i] = views.OnClick(func(ctx *core.Context) {
			core.Set(ctx, l.Selected, i)
		}, views.Of(ListItem{Index: i, Todos: l.Todos, Todo: item, Selected: selected == i}))
	}

	return views.OnClick(func(ctx *core.Context) {
		core.Set(ctx, l.Selected, -1)
	}, views.PaddingAll(ListPadding, views.Column(
		views.Column(rows...).WithSpacing(ItemSpacing),
		views.NewSpacer(),
		shapes(),
		views.NewSpacer(),
		views.Of(AddButton{Todos: l.Todos}),
	).WithSpacing(SectionSpacing)))
}

func rounded(color graphics.Color, smoothing float64, child core.View) core.View {
	return views.Background(views.BoxDecoration{Color: color, Radius: 32, Smoothing: smoothing}, child)
}

func square() views.Spacer {
	return views.NewSpacer().Width(100).Height(100)
}

// shapes compares corner smoothing amounts side by side.
func shapes() core.View {
	return views.Row(
		views.NewSpacer().Height(0),
		rounded(graphics.ColorBlack, 0, rounded(graphics.ColorWhite, 1, square())),
		rounded(graphics.ColorBlack, 0, square()),
		rounded(graphics.ColorBlack, 0.6, square()),
		rounded(graphics.ColorBlack, 1, square()),
		views.NewSpacer().Height(0),
	).WithSpacing(8)
}

// ListItem is one row of the list with a delete button.
type ListItem struct {
	Index    int
	Todos    core.Binding[Todos]
	Todo     Todo
	Selected bool
}

func (l ListItem) Body(*core.Context) core.View {
	index, todos := l.Index, l.Todos
	deleteButton := views.OnClick(func(ctx *core.Context) {
		core.Update(ctx, todos, func(t *Todos) {
			t.Items = slices.Delete(t.Items, index, index+1)
		})
	}, views.Background(
		views.BoxDecoration{Color: graphics.ColorRed, Radius: 32, Smoothing: 0.6},
		views.Padded(
			layout.EdgeInsets{Left: 8, Top: 4, Right: 8, Bottom: 5},
			views.Text("Delete").WithSize(12).WithColor(graphics.ColorWhite),
		),
	))

	decoration := views.BoxDecoration{Color: graphics.ColorWhite, Radius: 8, Smoothing: 0.6}
	if l.Selected {
		decoration.Border = &views.Border{Width: 2, Color: selectedColor}
	}
	return views.Background(decoration, views.PaddingAll(16, views.Row(
		views.Text(l.Todo.Name).WithSize(16),
		views.NewSpacer().Height(0),
		deleteButton,
	)))
}

func white() graphics.Color { return graphics.ColorWhite }

// AddButton appends a new item when clicked and shades itself while the
// pointer hovers or presses it.
type AddButton struct {
	Todos core.Binding[Todos]
}

func (b AddButton) Body(ctx *core.Context) core.View {
	color := core.UseState(ctx, white)
	todos := b.Todos
	return views.OnMouse(func(ctx *core.Context, prev, next views.MouseState) {
		switch next {
		case views.MouseIdle:
			core.Set(ctx, color, graphics.ColorWhite)
		case views.MouseHover:
			core.Set(ctx, color, hoverColor)
		case views.MousePressed:
			core.Set(ctx, color, pressedColor)
		}
		if prev == views.MousePressed && next == views.MouseHover {
			core.Update(ctx, todos, func(t *Todos) {
				t.Items = append(t.Items, Todo{Name: fmt.Sprintf("Item %d", len(t.Items)+1)})
			})
		}
	}, views.Background(
		views.BoxDecoration{Color: core.Read(ctx, color), Radius: 8, Smoothing: 0.6},
		views.PaddingAll(16, views.Row(
			views.NewSpacer().Height(0),
			views.Text("New item").WithSize(16),
			views.NewSpacer().Height(0),
		)),
	))
}
