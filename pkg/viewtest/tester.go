package viewtest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/core"
	fluxerrors "github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrNotMounted is returned by methods that need a mounted tree.
var ErrNotMounted = errors.New("viewtest: no view mounted")

// Tester mounts a view in a headless tree and drives it the way the app
// layer does: pointer interactions, update cycles, resizes, and paints.
type Tester struct {
	tree     *core.Tree
	size     graphics.Size
	cursor   graphics.Offset
	consumed bool
	last     core.UpdateResult
	redraws  int
}

// NewTester creates a tester with the default surface size.
func NewTester() *Tester {
	return &Tester{size: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}}
}

// NewTesterWithT creates a tester whose engine errors are written to the
// test log. The previous error handler is restored on cleanup.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	previous := fluxerrors.SetHandler(&fluxerrors.LogHandler{Verbose: true, Out: logWriter{t}})
	t.Cleanup(func() { fluxerrors.SetHandler(previous) })
	return tester
}

type logWriter struct{ t testing.TB }

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// SetSize sets the surface size. Must be called before PumpView.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
}

// PumpView mounts (or remounts) root on a fresh tree.
func (t *Tester) PumpView(root core.View) error {
	t.tree = core.NewTree(root, core.WithRedrawCallback(func() { t.redraws++ }))
	t.tree.Mount(t.size)
	t.last = core.UpdateResult{}
	return nil
}

// Pump runs one update cycle for state written since the last one.
func (t *Tester) Pump() error {
	if t.tree == nil {
		return ErrNotMounted
	}
	t.last = t.tree.Update()
	return nil
}

// Tree returns the mounted tree, or nil.
func (t *Tester) Tree() *core.Tree {
	return t.tree
}

// LastUpdate returns the result of the most recent Pump.
func (t *Tester) LastUpdate() core.UpdateResult {
	return t.last
}

// Redraws counts redraw requests raised by the tree.
func (t *Tester) Redraws() int {
	return t.redraws
}

// Consumed reports whether the last pointer interaction was consumed.
func (t *Tester) Consumed() bool {
	return t.consumed
}

// Resize lays the tree out in a new surface size.
func (t *Tester) Resize(size graphics.Size) error {
	t.size = size
	if t.tree == nil {
		return ErrNotMounted
	}
	t.tree.Resize(size)
	return nil
}

// Find evaluates a finder against the current tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.tree == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{tree: t.tree, ids: finder.Evaluate(t.tree), finder: finder}
}

// LayoutOf returns the node's rectangle in root coordinates.
func (t *Tester) LayoutOf(id arena.ID) graphics.Rect {
	return t.tree.Absolute(id)
}

// Paint records the tree into a display list.
func (t *Tester) Paint() *graphics.DisplayList {
	if t.tree == nil {
		return nil
	}
	return t.tree.Picture()
}

// Builds returns how many times views with the debug name were built since
// the tree was mounted or ResetStats ran.
func (t *Tester) Builds(name string) int {
	if t.tree == nil {
		return 0
	}
	return t.tree.Stats().BuildsByView[name]
}

// ResetStats zeroes the tree's counters.
func (t *Tester) ResetStats() {
	if t.tree != nil {
		t.tree.ResetStats()
	}
}

func (t *Tester) dispatch(i core.Interaction) error {
	if t.tree == nil {
		return fmt.Errorf("%v: %w", i, ErrNotMounted)
	}
	t.cursor = i.Position
	t.consumed = t.tree.Interact(i)
	return nil
}
