package demo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/views"
	"github.com/flux-ui/flux/pkg/viewtest"
)

func mount(t *testing.T, root core.View) *viewtest.Tester {
	t.Helper()
	tester := viewtest.NewTesterWithT(t)
	if err := tester.PumpView(root); err != nil {
		t.Fatal(err)
	}
	return tester
}

func tap(t *testing.T, tester *viewtest.Tester, finder viewtest.Finder) {
	t.Helper()
	if err := tester.Tap(finder); err != nil {
		t.Fatal(err)
	}
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
}

func itemsColumn() viewtest.Finder {
	return viewtest.ByPredicate(func(info core.NodeInfo) bool {
		f, ok := info.View.(views.Flex)
		return ok && f.Axis == graphics.Vertical && f.Spacing == ItemSpacing
	})
}

func listItems(tester *viewtest.Tester) []ListItem {
	var items []ListItem
	for _, id := range tester.Find(viewtest.ByType[views.ComponentView[ListItem]]()).All() {
		items = append(items, tester.Tree().Node(id).View.(views.ComponentView[ListItem]).C)
	}
	return items
}

func names(items []ListItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Todo.Name
	}
	return out
}

func TestCounter_ClickRebuildsOnlyReader(t *testing.T) {
	tester := mount(t, views.Of(Counter{}))
	if !tester.Find(viewtest.ByText("0")).Exists() {
		t.Fatal("initial count not shown")
	}

	tap(t, tester, viewtest.ByType[views.MouseListener]())

	if !tester.Find(viewtest.ByText("1")).Exists() {
		t.Error("label did not update to 1")
	}
	rebuilt := tester.LastUpdate().Rebuilt
	if len(rebuilt) != 1 || tester.Tree().Node(rebuilt[0]).Name != "demo.CountLabel" {
		t.Fatalf("rebuilt %v, want only the count label", rebuilt)
	}
	if got := tester.Builds("demo.Counter"); got != 1 {
		t.Errorf("Counter built %d times, want 1", got)
	}
	if got := tester.Builds("demo.CountLabel"); got != 2 {
		t.Errorf("CountLabel built %d times, want 2", got)
	}
	// Two labels at mount, then only the count label again.
	if got := tester.Builds("views.Label"); got != 3 {
		t.Errorf("labels built %d times, want 3", got)
	}
}

func TestTodo_DeleteRemovesItemAndReindexes(t *testing.T) {
	tester := mount(t, views.Of(TodoApp{}))

	items := tester.Find(viewtest.ByType[views.ComponentView[ListItem]]())
	if items.Count() != 4 {
		t.Fatalf("found %d items, want 4", items.Count())
	}
	itemHeight := items.Rect().Size.Height
	before := tester.Find(itemsColumn()).Rect().Size.Height

	tap(t, tester, deleteButton(1))

	if diff := cmp.Diff([]string{"First", "Third", "Fourth"}, names(listItems(tester))); diff != "" {
		t.Fatalf("items after first delete (-want +got):\n%s", diff)
	}
	for i, item := range listItems(tester) {
		if item.Index != i {
			t.Errorf("item %q has index %d, want %d", item.Todo.Name, item.Index, i)
		}
	}
	after := tester.Find(itemsColumn()).Rect().Size.Height
	if d := before - after; math.Abs(d-(itemHeight+ItemSpacing)) > 1e-9 {
		t.Errorf("list shrank by %v, want %v", d, itemHeight+ItemSpacing)
	}

	// The handler at index 1 now deletes the former third item.
	tap(t, tester, deleteButton(1))
	if diff := cmp.Diff([]string{"First", "Fourth"}, names(listItems(tester))); diff != "" {
		t.Errorf("items after second delete (-want +got):\n%s", diff)
	}
}

func deleteButton(index int) viewtest.Finder {
	return indexed{viewtest.ByText("Delete"), index}
}

type indexed struct {
	viewtest.Finder
	index int
}

func (f indexed) Evaluate(tree *core.Tree) []arena.ID {
	all := f.Finder.Evaluate(tree)
	if f.index >= len(all) {
		return nil
	}
	return all[f.index : f.index+1]
}

func TestTodo_SelectAndClear(t *testing.T) {
	tester := mount(t, views.Of(TodoApp{}))

	tap(t, tester, viewtest.ByText("Third"))
	for _, item := range listItems(tester) {
		if item.Selected != (item.Index == 2) {
			t.Errorf("item %d selected = %v", item.Index, item.Selected)
		}
	}

	list := tester.Find(itemsColumn()).Rect()
	empty := graphics.Offset{X: list.Position.X + 10, Y: list.Position.Y + list.Size.Height + SectionSpacing + 4}
	if err := tester.TapAt(empty); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	for _, item := range listItems(tester) {
		if item.Selected {
			t.Errorf("item %d still selected", item.Index)
		}
	}
}

func TestTodo_AddButtonAppends(t *testing.T) {
	tester := mount(t, views.Of(TodoApp{}))
	tap(t, tester, viewtest.ByText("New item"))

	if diff := cmp.Diff([]string{"First", "Second", "Third", "Fourth", "Item 5"}, names(listItems(tester))); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestTodo_ResizeRelayoutsWithoutRebuild(t *testing.T) {
	tester := mount(t, views.Of(TodoApp{}))
	tester.ResetStats()

	if err := tester.Resize(graphics.Size{Width: 400, Height: 300}); err != nil {
		t.Fatal(err)
	}
	stats := tester.Tree().Stats()
	if stats.Builds != 0 {
		t.Errorf("resize rebuilt %d views", stats.Builds)
	}
	if stats.Layouts != tester.Tree().Len() {
		t.Errorf("laid out %d nodes, want all %d", stats.Layouts, tester.Tree().Len())
	}
	// The shapes row cannot shrink below 400, so the root overflows the window.
	if got := tester.Tree().Window(); got != (graphics.Size{Width: 400, Height: 300}) {
		t.Errorf("window = %v, want 400x300", got)
	}
	if got := tester.LayoutOf(tester.Tree().Root()).Position; got != (graphics.Offset{}) {
		t.Errorf("root position = %v, want origin", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) succeeded")
	}
}
