package core

import (
	"github.com/flux-ui/flux/pkg/arena"
)

type interactor struct {
	tree *Tree
	id   arena.ID
}

func (i interactor) Interact(in Interaction) bool {
	return i.tree.interactNode(i.id, in)
}

func (t *Tree) interactors(id arena.ID) []Interactor {
	children := t.nodes.Get(id).children
	out := make([]Interactor, len(children))
	for i, child := range children {
		out[i] = interactor{tree: t, id: child}
	}
	return out
}

// Interact dispatches a pointer interaction given in root coordinates and
// reports whether any node consumed it. State written by handlers is picked
// up by the next Update.
func (t *Tree) Interact(i Interaction) bool {
	consumed := t.interactNode(t.root, i)
	Logger().Debug("interaction dispatched", "interaction", i.String(), "consumed", consumed)
	return consumed
}

func (t *Tree) interactNode(id arena.ID, i Interaction) bool {
	n := t.nodes.Get(id)
	view, l := n.view, n.layout
	ctx := t.interactContext(id)
	defer ctx.close()
	return view.Interact(ctx, l, i, t.interactors(id))
}
