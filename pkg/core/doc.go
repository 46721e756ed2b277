// Package core implements the retained view tree: the View contract, the
// per-node Context, reconciliation, layout, painting, and interaction
// dispatch.
//
// # Views and nodes
//
// A View is an immutable description of part of the UI. Application code
// creates new View values on every build; the Tree pairs them with retained
// nodes that keep identity, state, cached sizes, and recorded pictures across
// rebuilds.
//
//	type Greeting struct {
//	    core.Leaf
//	    Name string
//	}
//
// Two views are considered unchanged when they have the same concrete type
// and are deeply equal (or are the same pointer). Unchanged subtrees are not
// rebuilt. Views holding func values never compare equal, so a parent rebuild
// always rebuilds them; use Equaler to opt out.
//
// # State
//
// State lives in the tree's store, keyed by the owning node and the value
// type, and is reached through copyable Bindings:
//
//	func (c Counter) Build(ctx *core.Context) []core.View {
//	    count := core.UseState(ctx, func() int { return 0 })
//	    return []core.View{CountLabel{Count: count}}
//	}
//
// Reading a binding during Build or Interact records a dependency; writing through it
// marks the entry dirty. Tree.Update rebuilds exactly the nodes that read a
// dirty entry.
//
// # Update cycle
//
// Tree.Update runs synchronously: fan-out of dirty state to dependent nodes,
// rebuild in depth order, relayout from the highest node whose size hint
// changed, paint invalidation, and finally clearing of dirty state and change
// flags. Nothing in this package is safe for concurrent use.
package core
