package core

import (
	"math"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

type sizer struct {
	tree *Tree
	id   arena.ID
}

func (s sizer) Size(c layout.Constraints) graphics.Size {
	return s.tree.size(s.id, c)
}

func (t *Tree) sizers(id arena.ID) []Sizer {
	children := t.nodes.Get(id).children
	out := make([]Sizer, len(children))
	for i, child := range children {
		out[i] = sizer{tree: t, id: child}
	}
	return out
}

// size returns the node's size under c, consulting the node's cache.
func (t *Tree) size(id arena.ID, c layout.Constraints) graphics.Size {
	n := t.nodes.Get(id)
	if s, ok := n.cache.Lookup(t.cycle, c); ok {
		t.stats.SizeCacheHits++
		return s
	}
	t.stats.SizeCacheMisses++
	view := n.view
	s := view.Size(c, t.sizers(id))
	if s.Width < 0 || s.Height < 0 || math.IsNaN(s.Width) || math.IsNaN(s.Height) {
		errors.Invariant("core.Tree.size", errors.KindLayout, "%s returned size %v under %v", DebugName(view), s, c)
	}
	t.nodes.Get(id).cache.Store(t.cycle, c, s)
	return s
}

// updateHints recomputes hints bottom-up for every node under id whose hint
// was invalidated, and reports whether id's own hint changed.
func (t *Tree) updateHints(id arena.ID) bool {
	n := t.nodes.Get(id)
	if n.hintValid {
		return false
	}
	for _, child := range n.children {
		t.updateHints(child)
	}
	hint := layout.HintOf(sizer{tree: t, id: id})
	n = t.nodes.Get(id)
	changed := hint != n.hint
	n.hint = hint
	n.hintValid = true
	if changed {
		n.mark(t.cycle, ChangeSizeHint)
	}
	return changed
}

// relayoutRoot finds where layout must restart after id was rebuilt. It
// walks up while size hints keep changing, invalidating each ancestor's
// size cache. It returns the first ancestor (or id itself) whose hint held,
// or the zero ID when the change reached the root.
func (t *Tree) relayoutRoot(id arena.ID) arena.ID {
	changed := t.updateHints(id)
	cur := id
	for changed {
		parent := t.nodes.Get(cur).parent
		if !parent.IsValid() {
			return arena.ID{}
		}
		p := t.nodes.Get(parent)
		p.cache.Invalidate()
		p.hintValid = false
		changed = t.updateHints(parent)
		cur = parent
	}
	return cur
}

// layoutRoot sizes the root to the window and lays out the whole tree.
func (t *Tree) layoutRoot() {
	size := t.size(t.root, layout.FixedSize(t.window))
	t.layoutNode(t.root, layout.Layout{Size: size})
}

// layoutNode assigns l to the node and recursively lays out its children.
func (t *Tree) layoutNode(id arena.ID, l layout.Layout) {
	n := t.nodes.Get(id)
	if n.layout != l {
		flags := ChangeLayout
		if n.layout.Size != l.Size {
			flags |= ChangeSize
		}
		n.mark(t.cycle, flags)
		n.layout = l
		t.invalidatePicture(id)
	}
	view := n.view
	children := n.children
	t.stats.Layouts++
	if len(children) == 0 {
		return
	}
	layouts := view.Layout(l, t.sizers(id))
	if len(layouts) != len(children) {
		errors.Invariant("core.Tree.layoutNode", errors.KindLayout,
			"%s returned %d layouts for %d children", DebugName(view), len(layouts), len(children))
	}
	for i, child := range children {
		t.layoutNode(child, layouts[i])
	}
}
