package core

import (
	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/graphics"
)

type drawer struct {
	tree *Tree
	id   arena.ID
}

func (d drawer) Draw(p graphics.Painter) {
	d.tree.drawNode(d.id, p)
}

func (t *Tree) drawers(id arena.ID) []Drawer {
	children := t.nodes.Get(id).children
	out := make([]Drawer, len(children))
	for i, child := range children {
		out[i] = drawer{tree: t, id: child}
	}
	return out
}

// Draw paints the tree onto p. Nodes whose picture is still valid replay it
// instead of calling Draw.
func (t *Tree) Draw(p graphics.Painter) {
	t.drawNode(t.root, p)
	t.needsPaint = false
}

// NeedsPaint reports whether some node's picture was invalidated since the
// last Draw.
func (t *Tree) NeedsPaint() bool {
	return t.needsPaint
}

// Picture records the whole tree into a display list.
func (t *Tree) Picture() *graphics.DisplayList {
	return graphics.Record(t.Draw)
}

func (t *Tree) drawNode(id arena.ID, p graphics.Painter) {
	n := t.nodes.Get(id)
	if n.picture == nil {
		view, l := n.view, n.layout
		drawers := t.drawers(id)
		picture := graphics.Record(func(rp graphics.Painter) {
			view.Draw(l, rp, drawers)
		})
		n = t.nodes.Get(id)
		n.picture = picture
		n.mark(t.cycle, ChangePaint)
		t.stats.Paints++
	}
	graphics.DrawList(p, n.picture)
}

// invalidatePicture drops the recorded picture of id and of every ancestor,
// since ancestors replay it.
func (t *Tree) invalidatePicture(id arena.ID) {
	t.needsPaint = true
	for cur := id; cur.IsValid(); {
		n := t.nodes.Get(cur)
		if n.picture == nil && cur != id {
			return
		}
		n.picture = nil
		cur = n.parent
	}
}
