package views_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/viewtest"
	"github.com/flux-ui/flux/pkg/views"
)

func rects(tester *viewtest.Tester, f viewtest.Finder) []graphics.Rect {
	var out []graphics.Rect
	for _, id := range tester.Find(f).All() {
		out = append(out, tester.LayoutOf(id))
	}
	return out
}

func TestColumn_FlexibleSpacerTakesSlack(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.PumpView(views.Column(
		views.NewSpacer().Height(10),
		views.NewSpacer(),
	))

	got := rects(tester, viewtest.ByType[views.Spacer]())
	if len(got) != 2 {
		t.Fatalf("found %d spacers, want 2", len(got))
	}
	if got[1].Position.Y != 10 || got[1].Size.Height != 590 {
		t.Errorf("flexible spacer = %+v, want y=10 height=590", got[1])
	}
	if got[0].Size.Width != 800 {
		t.Errorf("cross axis width = %v, want 800", got[0].Size.Width)
	}
}

func TestColumn_GrowthStopsAtMax(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.PumpView(views.Column(
		views.NewSpacer().Height(50).MinHeight(20).MaxHeight(100),
		views.NewSpacer().Height(30).MaxHeight(100),
	))

	got := rects(tester, viewtest.ByType[views.Spacer]())
	for i, r := range got {
		if r.Size.Height != 100 {
			t.Errorf("spacer %d height = %v, want 100", i, r.Size.Height)
		}
	}
	if got[1].Position.Y != 100 {
		t.Errorf("second spacer y = %v, want 100", got[1].Position.Y)
	}
}

func TestColumn_ShrinksTowardMin(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 60})
	tester.PumpView(views.Column(
		views.NewSpacer().Height(50).MinHeight(20),
		views.NewSpacer().Height(50).MinHeight(40),
	))

	got := rects(tester, viewtest.ByType[views.Spacer]())
	if got[0].Size.Height+got[1].Size.Height != 60 {
		t.Errorf("heights %v + %v, want total 60", got[0].Size.Height, got[1].Size.Height)
	}
	if got[1].Size.Height < 40 {
		t.Errorf("second spacer shrank below its minimum: %v", got[1].Size.Height)
	}
}

func TestRow_Spacing(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.PumpView(views.Column(
		views.Row(views.NewSpacer().Width(10).Height(10), views.NewSpacer().Width(20).Height(10)).WithSpacing(5),
	))

	got := rects(tester, viewtest.ByType[views.Spacer]())
	if got[0].Position.X != 0 || got[1].Position.X != 15 {
		t.Errorf("x positions = %v, %v, want 0, 15", got[0].Position.X, got[1].Position.X)
	}
	if got[1].Size.Width != 20 {
		t.Errorf("second width = %v, want 20", got[1].Size.Width)
	}
}

func TestLabel_MeasuresText(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.PumpView(views.Column(views.Row(views.Text("abc").WithSize(13))))

	r := tester.Find(viewtest.ByText("abc")).Rect()
	if r.Size != (graphics.Size{Width: 21, Height: 13}) {
		t.Errorf("label size = %v, want 21x13", r.Size)
	}

	ops := tester.Paint().Ops()
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	op, ok := ops[0].(graphics.TextOp)
	if !ok || op.Text.Text != "abc" {
		t.Errorf("op = %#v, want text abc", ops[0])
	}
}

func TestLabel_WrapsAtWidth(t *testing.T) {
	tester := viewtest.NewTesterWithT(t)
	tester.PumpView(views.Column(views.Row(views.Text("aa bb").WithSize(13).WithWrap(20))))

	r := tester.Find(viewtest.ByText("aa bb")).Rect()
	if r.Size != (graphics.Size{Width: 14, Height: 26}) {
		t.Errorf("label size = %v, want 14x26", r.Size)
	}
	op, ok := tester.Paint().Ops()[0].(graphics.TextOp)
	if !ok {
		t.Fatalf("first op is %T, want TextOp", tester.Paint().Ops()[0])
	}
	var lines []string
	for _, line := range op.Text.Lines {
		lines = append(lines, line.Text)
	}
	if diff := cmp.Diff([]string{"aa", "bb"}, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}
