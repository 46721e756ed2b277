package viewtest

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/views"
)

type fakeT struct {
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func sampleSnapshot(t *testing.T) *Snapshot {
	tester := NewTesterWithT(t)
	tester.PumpView(views.Column(
		views.Background(views.Color(graphics.ColorRed), views.NewSpacer().Height(10)),
		views.Text("hi"),
	))
	return tester.CaptureSnapshot()
}

func TestCaptureSnapshot(t *testing.T) {
	snap := sampleSnapshot(t)
	if snap.Tree.Type != "views.Flex" || len(snap.Tree.Children) != 2 {
		t.Fatalf("unexpected tree: %+v", snap.Tree)
	}
	if snap.Tree.Children[1].Offset != [2]float64{0, 10} {
		t.Errorf("label offset = %v, want [0 10]", snap.Tree.Children[1].Offset)
	}
	if len(snap.DisplayOps) != 2 || snap.DisplayOps[0].Op != "rect" || snap.DisplayOps[1].Op != "text" {
		t.Errorf("unexpected ops: %+v", snap.DisplayOps)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := sampleSnapshot(t)
	path := filepath.Join(t.TempDir(), "nested", "sample.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	f := &fakeT{}
	snap.MatchesFile(f, path)
	if len(f.fatals)+len(f.errors) != 0 {
		t.Errorf("round trip mismatch: %v %v", f.fatals, f.errors)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	f := &fakeT{}
	sampleSnapshot(t).MatchesFile(f, filepath.Join(t.TempDir(), "missing.json"))
	if len(f.fatals) != 1 || !strings.Contains(f.fatals[0], "FLUX_UPDATE_SNAPSHOTS=1") {
		t.Errorf("fatals = %v", f.fatals)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	a := sampleSnapshot(t)
	b := sampleSnapshot(t)
	if d := a.Diff(b); d != "" {
		t.Errorf("equal snapshots differ:\n%s", d)
	}
	b.Tree.Type = "other"
	if d := a.Diff(b); !strings.Contains(d, "other") {
		t.Errorf("diff missing change:\n%s", d)
	}
}

func TestLineDiff_InsertedLineKeepsAlignment(t *testing.T) {
	d := lineDiff("alpha\nbeta\ngamma", "inserted\nalpha\nbeta\ngamma")
	if !strings.Contains(d, `"inserted"`) {
		t.Fatalf("diff missing inserted line:\n%s", d)
	}
	// A positional diff would report every later line as removed and re-added.
	for _, line := range []string{`"alpha"`, `"beta"`, `"gamma"`} {
		if n := strings.Count(d, line); n > 1 {
			t.Errorf("%s appears %d times in diff:\n%s", line, n, d)
		}
	}
}
