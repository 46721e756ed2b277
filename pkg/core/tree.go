package core

import (
	"slices"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/layout"
	"github.com/flux-ui/flux/pkg/state"
)

// Tree owns the retained nodes of one window and the state store they share.
type Tree struct {
	nodes  *arena.Arena[node]
	states *state.Store
	root   arena.ID
	window graphics.Size

	cycle      uint64
	pass       uint64
	mounted    bool
	needsPaint bool
	stats      Stats

	onRedraw func()
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithRedrawCallback registers fn to be called whenever an update leaves
// part of the tree needing repaint.
func WithRedrawCallback(fn func()) TreeOption {
	return func(t *Tree) { t.onRedraw = fn }
}

// NewTree creates a tree for root. The tree is not built until Mount.
func NewTree(root View, opts ...TreeOption) *Tree {
	if root == nil {
		errors.Invariant("core.NewTree", errors.KindBuild, "nil root view")
	}
	t := &Tree{
		nodes:  arena.New[node](),
		states: state.NewStore(),
		stats:  newStats(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.nodes.Insert(node{view: root})
	return t
}

// Mount builds the whole tree and lays it out inside a window of size.
func (t *Tree) Mount(size graphics.Size) {
	t.cycle++
	t.pass++
	t.window = size
	t.rebuild(t.root)
	t.updateHints(t.root)
	t.layoutRoot()
	t.mounted = true
	t.finishCycle()
	Logger().Debug("tree mounted", "nodes", t.nodes.Len(), "width", size.Width, "height", size.Height)
}

// Mounted reports whether Mount has run.
func (t *Tree) Mounted() bool {
	return t.mounted
}

// Root returns the root node's ID.
func (t *Tree) Root() arena.ID {
	return t.root
}

// Window returns the size the root is laid out in.
func (t *Tree) Window() graphics.Size {
	return t.window
}

// Len returns the number of retained nodes.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Contains reports whether id names a live node.
func (t *Tree) Contains(id arena.ID) bool {
	return t.nodes.Contains(id)
}

// States exposes the tree's state store for inspection.
func (t *Tree) States() *state.Store {
	return t.states
}

// Node returns a snapshot of the node. It panics if id is not live.
func (t *Tree) Node(id arena.ID) NodeInfo {
	n := t.nodes.Get(id)
	return NodeInfo{
		ID:       id,
		Parent:   n.parent,
		Children: slices.Clone(n.children),
		View:     n.view,
		Name:     DebugName(n.view),
		Depth:    n.depth,
		Hint:     n.hint,
		Layout:   n.layout,
		Change:   n.changes(t.cycle),
	}
}

// Children returns the node's child IDs in layout order.
func (t *Tree) Children(id arena.ID) []arena.ID {
	return slices.Clone(t.nodes.Get(id).children)
}

// Parent returns the node's parent, or the zero ID for the root.
func (t *Tree) Parent(id arena.ID) arena.ID {
	return t.nodes.Get(id).parent
}

// SizeHint returns the node's last computed size hint.
func (t *Tree) SizeHint(id arena.ID) layout.SizeHint {
	return t.nodes.Get(id).hint
}

// Walk visits nodes depth first, parents before children. Returning false
// from fn skips the node's subtree.
func (t *Tree) Walk(fn func(id arena.ID, info NodeInfo) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(id arena.ID, fn func(arena.ID, NodeInfo) bool) {
	if !fn(id, t.Node(id)) {
		return
	}
	for _, child := range t.nodes.Get(id).children {
		t.walk(child, fn)
	}
}

// Find returns the IDs of nodes whose debug name is name, in walk order.
func (t *Tree) Find(name string) []arena.ID {
	var ids []arena.ID
	t.Walk(func(id arena.ID, info NodeInfo) bool {
		if info.Name == name {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Absolute returns the node's rectangle in root coordinates.
func (t *Tree) Absolute(id arena.ID) graphics.Rect {
	n := t.nodes.Get(id)
	rect := n.layout.Rect()
	for p := n.parent; p.IsValid(); p = t.nodes.Get(p).parent {
		rect = rect.Translate(t.nodes.Get(p).layout.Position)
	}
	return rect
}

// Stats returns a copy of the tree's counters.
func (t *Tree) Stats() Stats {
	return t.stats.clone()
}

// ResetStats zeroes the tree's counters.
func (t *Tree) ResetStats() {
	t.stats = newStats()
}

func (t *Tree) buildContext(id arena.ID) *Context {
	return &Context{tree: t, node: id, reader: id}
}

func (t *Tree) interactContext(id arena.ID) *Context {
	return &Context{tree: t, node: id, reader: id}
}

// finishCycle clears the dirty set and reports pending paint. Node flags
// expire lazily when the next cycle starts.
func (t *Tree) finishCycle() {
	t.states.ClearChanges()
	if t.needsPaint && t.onRedraw != nil {
		t.onRedraw()
	}
}
