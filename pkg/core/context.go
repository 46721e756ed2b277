package core

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/state"
)

// Context is handed to Build and Interact. It is scoped to one node: state
// created through it belongs to that node, and reads through it make that
// node depend on what was read. An edge added during Interact lasts until the
// node's next rebuild replaces its dependency set. Use Peek for an untracked
// read. A Context must not be retained after the call it was passed to
// returns.
type Context struct {
	tree   *Tree
	node   arena.ID
	reader arena.ID
	guards []guard
}

type guard interface {
	Released() bool
	Release()
}

// Node returns the ID of the node the context is scoped to.
func (c *Context) Node() arena.ID {
	return c.node
}

// Tree returns the tree the node belongs to.
func (c *Context) Tree() *Tree {
	return c.tree
}

func (c *Context) track(g guard) {
	c.guards = append(c.guards, g)
}

// close releases guards the caller left open, newest first.
func (c *Context) close() {
	for i := len(c.guards) - 1; i >= 0; i-- {
		if g := c.guards[i]; !g.Released() {
			g.Release()
		}
	}
	c.guards = nil
}

// Binding is a copyable handle to one state entry. Bindings compare equal
// when they name the same owner and type, so views holding them still
// compare equal across rebuilds.
type Binding[T any] struct {
	key state.Key
}

// Owner returns the node that owns the entry.
func (b Binding[T]) Owner() arena.ID {
	return b.key.Owner
}

// Key returns the store key of the entry.
func (b Binding[T]) Key() state.Key {
	return b.key
}

func (b Binding[T]) String() string {
	return fmt.Sprintf("Binding(%v)", b.key)
}

// UseState returns the binding for the node's T entry, creating it with init
// on first use. Later calls for the same node and type ignore init.
func UseState[T any](c *Context, init func() T) Binding[T] {
	return Binding[T]{key: state.Ensure(c.tree.states, c.node, init)}
}

// Get opens a shared guard on b. Reading its Value in Build makes the
// context's node depend on b. Guards left open are released when the context closes.
func Get[T any](c *Context, b Binding[T]) *state.Ref[T] {
	r := state.Get[T](c.tree.states, b.key, c.reader)
	c.track(r)
	return r
}

// GetMut opens an exclusive guard on b. Writing through it marks b dirty.
func GetMut[T any](c *Context, b Binding[T]) *state.RefMut[T] {
	r := state.GetMut[T](c.tree.states, b.key, c.reader)
	c.track(r)
	return r
}

// Read returns the value of b and records the dependency.
func Read[T any](c *Context, b Binding[T]) T {
	r := Get(c, b)
	defer r.Release()
	return r.Value()
}

// Set replaces the value of b and marks it dirty.
func Set[T any](c *Context, b Binding[T], v T) {
	r := GetMut(c, b)
	defer r.Release()
	r.Set(v)
}

// Update mutates b in place and marks it dirty.
func Update[T any](c *Context, b Binding[T], fn func(*T)) {
	r := GetMut(c, b)
	defer r.Release()
	fn(r.Ptr())
}

// Peek returns the value of b without recording a dependency.
func Peek[T any](c *Context, b Binding[T]) T {
	return state.Peek[T](c.tree.states, b.key)
}

// Mutate writes b from outside Build and Interact, for example from a timer
// callback on the event-loop goroutine. The next Update picks it up.
func Mutate[T any](t *Tree, b Binding[T], fn func(*T)) {
	r := state.GetMut[T](t.states, b.key, arena.ID{})
	defer r.Release()
	fn(r.Ptr())
}
