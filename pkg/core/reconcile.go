package core

import (
	"reflect"
	"slices"
	"time"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
)

// buildOrUpdate reconciles view against the previous node at its position.
// With no previous node a new one is inserted and built. Otherwise the node
// is reattached to parent and, unless the view is unchanged, rebuilt.
func (t *Tree) buildOrUpdate(parent arena.ID, view View, previous arena.ID) arena.ID {
	depth := t.nodes.Get(parent).depth + 1
	if !previous.IsValid() {
		id := t.nodes.Insert(node{parent: parent, view: view, depth: depth})
		t.rebuild(id)
		return id
	}
	n := t.nodes.Get(previous)
	n.parent = parent
	n.depth = depth
	if sameView(n.view, view) {
		return previous
	}
	n.view = view
	t.rebuild(previous)
	return previous
}

// rebuild runs Build on the node and reconciles its children positionally.
func (t *Tree) rebuild(id arena.ID) {
	n := t.nodes.Get(id)
	view := n.view
	n.builtPass = t.pass
	n.mark(t.cycle, ChangeView|ChangeChildren)
	n.cache.Invalidate()
	n.hintValid = false
	t.invalidatePicture(id)
	t.states.ClearDependencies(id)

	views := t.build(id, view)
	t.stats.countBuild(DebugName(view))

	old := slices.Clone(t.nodes.Get(id).children)
	children := make([]arena.ID, len(views))
	for i, v := range views {
		if v == nil {
			errors.Invariant("core.Tree.rebuild", errors.KindBuild, "%s returned a nil child at index %d", DebugName(view), i)
		}
		var previous arena.ID
		if i < len(old) {
			if sameType(t.nodes.Get(old[i]).view, v) {
				previous = old[i]
			} else {
				t.remove(old[i])
			}
		}
		children[i] = t.buildOrUpdate(id, v, previous)
	}
	for _, stale := range old[min(len(views), len(old)):] {
		t.remove(stale)
	}
	t.nodes.Get(id).children = children
}

// build calls view.Build in a context scoped to id. A panic is reported as a
// BuildError and then propagated.
func (t *Tree) build(id arena.ID, view View) []View {
	ctx := t.buildContext(id)
	defer ctx.close()
	defer func() {
		if r := recover(); r != nil {
			errors.ReportBuildError(&errors.BuildError{
				View:       DebugName(view),
				Depth:      t.nodes.Get(id).depth,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			panic(r)
		}
	}()
	return view.Build(ctx)
}

// remove deletes the subtree rooted at id, releasing every ID together with
// the state entries and dependency edges of each removed node.
func (t *Tree) remove(id arena.ID) {
	for _, child := range t.nodes.Get(id).children {
		t.remove(child)
	}
	t.states.RemoveOwner(id)
	t.nodes.Remove(id)
	t.stats.Removed++
}

func sameType(a, b View) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// sameView reports whether b can stand in for a without rebuilding.
func sameView(a, b View) bool {
	if !sameType(a, b) {
		return false
	}
	if reflect.TypeOf(a).Kind() == reflect.Pointer && a == b {
		return true
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
