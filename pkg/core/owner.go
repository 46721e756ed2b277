package core

import (
	"slices"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/state"
)

// maxBuildPasses bounds how often one Update re-runs fan-out when builds
// themselves write state.
const maxBuildPasses = 16

// UpdateResult describes what one update cycle did.
type UpdateResult struct {
	// Rebuilt lists the nodes rebuilt because they depended on dirty state,
	// in the order they were rebuilt.
	Rebuilt []arena.ID
	// FullLayout is set when a size hint change reached the root.
	FullLayout bool
	// RelayoutRoots lists where partial relayout started.
	RelayoutRoots []arena.ID
	// Redraw reports whether any node must be repainted.
	Redraw bool
}

// HasChanges reports whether state was written since the last update.
func (t *Tree) HasChanges() bool {
	return t.states.HasChanges()
}

// Update runs one update cycle: dirty state is fanned out to the nodes that
// read it, those nodes are rebuilt parents first, layout restarts from the
// highest node whose size hint moved, and pictures of changed nodes are
// dropped. The dirty set is empty afterwards.
func (t *Tree) Update() UpdateResult {
	var result UpdateResult
	if !t.mounted || !t.states.HasChanges() {
		return result
	}
	t.cycle++

	for pass := 0; t.states.HasChanges(); pass++ {
		if pass == maxBuildPasses {
			errors.Invariant("core.Tree.Update", errors.KindState, "state written during build did not settle after %d passes", pass)
		}
		t.pass++
		dirty := t.states.Dirty()
		t.states.ClearChanges()
		for _, id := range t.fanOut(dirty) {
			if !t.nodes.Contains(id) || t.nodes.Get(id).builtPass == t.pass {
				continue
			}
			t.rebuild(id)
			result.Rebuilt = append(result.Rebuilt, id)
		}
	}

	var roots []arena.ID
	for _, id := range result.Rebuilt {
		if !t.nodes.Contains(id) {
			continue
		}
		root := t.relayoutRoot(id)
		if !root.IsValid() {
			result.FullLayout = true
			continue
		}
		roots = append(roots, root)
	}
	if result.FullLayout {
		t.layoutRoot()
	} else {
		for _, id := range t.outermost(roots) {
			t.layoutNode(id, t.nodes.Get(id).layout)
			result.RelayoutRoots = append(result.RelayoutRoots, id)
		}
	}

	result.Redraw = t.needsPaint
	t.finishCycle()
	Logger().Debug("update cycle",
		"cycle", t.cycle,
		"rebuilt", len(result.Rebuilt),
		"full_layout", result.FullLayout,
		"relayout_roots", len(result.RelayoutRoots),
		"redraw", result.Redraw)
	return result
}

// Resize lays the tree out in a new window size without rebuilding.
func (t *Tree) Resize(size graphics.Size) bool {
	if !t.mounted {
		t.window = size
		return false
	}
	t.cycle++
	t.window = size
	t.layoutRoot()
	redraw := t.needsPaint
	t.finishCycle()
	Logger().Debug("tree resized", "width", size.Width, "height", size.Height, "redraw", redraw)
	return redraw
}

// fanOut returns the live dependents of the dirty keys, shallowest first.
func (t *Tree) fanOut(dirty []state.Key) []arena.ID {
	seen := make(map[arena.ID]struct{})
	var ids []arena.ID
	for _, key := range dirty {
		for _, id := range t.states.Dependents(key) {
			if _, ok := seen[id]; ok || !t.nodes.Contains(id) {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	slices.SortStableFunc(ids, func(a, b arena.ID) int {
		return t.nodes.Get(a).depth - t.nodes.Get(b).depth
	})
	return ids
}

// outermost drops roots that lie inside another root's subtree.
func (t *Tree) outermost(roots []arena.ID) []arena.ID {
	set := make(map[arena.ID]struct{}, len(roots))
	for _, id := range roots {
		set[id] = struct{}{}
	}
	var out []arena.ID
	for id := range set {
		covered := false
		for p := t.nodes.Get(id).parent; p.IsValid(); p = t.nodes.Get(p).parent {
			if _, ok := set[p]; ok {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, id)
		}
	}
	slices.SortFunc(out, func(a, b arena.ID) int { return a.Index() - b.Index() })
	return out
}
