package core

import (
	"strings"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
)

// Change records what happened to a node during the current update cycle.
type Change uint8

const (
	// ChangeView means the node's view was replaced and the node rebuilt.
	ChangeView Change = 1 << iota
	// ChangeChildren means the child list was reconciled.
	ChangeChildren
	// ChangeSizeHint means the node's size hint changed.
	ChangeSizeHint
	// ChangeSize means the laid-out size changed.
	ChangeSize
	// ChangeLayout means the laid-out position or size changed.
	ChangeLayout
	// ChangePaint means the node's picture was re-recorded.
	ChangePaint

	changeNone Change = 0
)

// Has reports whether any flag in o is set in c.
func (c Change) Has(o Change) bool {
	return c&o != 0
}

func (c Change) String() string {
	names := []struct {
		flag Change
		name string
	}{
		{ChangeView, "view"},
		{ChangeChildren, "children"},
		{ChangeSizeHint, "size_hint"},
		{ChangeSize, "size"},
		{ChangeLayout, "layout"},
		{ChangePaint, "paint"},
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type node struct {
	parent   arena.ID
	children []arena.ID
	view     View
	depth    int

	hint      layout.SizeHint
	hintValid bool
	cache     layout.SizeCache
	layout    layout.Layout
	picture   *graphics.DisplayList

	change      Change
	changeCycle uint64
	builtPass   uint64
}

// NodeInfo is a read-only snapshot of a retained node.
type NodeInfo struct {
	ID       arena.ID
	Parent   arena.ID
	Children []arena.ID
	View     View
	Name     string
	Depth    int
	Hint     layout.SizeHint
	Layout   layout.Layout
	// Change holds the flags raised during the most recent update cycle.
	Change Change
}

// mark raises flags on n for the given cycle. Flags from an earlier cycle
// are dropped first, so clearing at the end of a cycle costs nothing.
func (n *node) mark(cycle uint64, flags Change) {
	if n.changeCycle != cycle {
		n.change = changeNone
		n.changeCycle = cycle
	}
	n.change |= flags
}

func (n *node) changes(cycle uint64) Change {
	if n.changeCycle != cycle {
		return changeNone
	}
	return n.change
}
