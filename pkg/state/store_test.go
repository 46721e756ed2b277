package state

import (
	"testing"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/google/go-cmp/cmp"
)

type count int

type label string

func newNodes(n int) []arena.ID {
	a := arena.New[struct{}]()
	ids := make([]arena.ID, n)
	for i := range ids {
		ids[i] = a.Insert(struct{}{})
	}
	return ids
}

func expectInvariant(t *testing.T, kind errors.ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		inv, ok := recover().(*errors.InvariantError)
		if !ok {
			t.Fatalf("expected *errors.InvariantError panic")
		}
		if inv.Kind != kind {
			t.Errorf("Kind = %v, want %v", inv.Kind, kind)
		}
	}()
	fn()
}

func TestStore_EnsureIsIdempotent(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	calls := 0
	init := func() count { calls++; return 7 }
	k1 := Ensure(s, node, init)
	k2 := Ensure(s, node, init)
	if k1 != k2 {
		t.Fatal("Ensure returned different keys for the same owner and type")
	}
	if calls != 1 {
		t.Errorf("init called %d times, want 1", calls)
	}
	if got := Peek[count](s, k1); got != 7 {
		t.Errorf("value = %d, want 7", got)
	}
}

func TestStore_OneEntryPerType(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	Ensure(s, node, func() count { return 1 })
	Ensure(s, node, func() label { return "a" })
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStore_ReadRecordsDependency(t *testing.T) {
	s := NewStore()
	ids := newNodes(2)
	owner, reader := ids[0], ids[1]
	key := Ensure(s, owner, func() count { return 0 })

	r := Get[count](s, key, reader)
	_ = r.Value()
	r.Release()

	if diff := cmp.Diff([]arena.ID{reader}, s.Dependents(key), cmp.Comparer(func(a, b arena.ID) bool { return a == b })); diff != "" {
		t.Errorf("Dependents mismatch (-want +got):\n%s", diff)
	}
	if s.HasChanges() {
		t.Error("a read marked the store dirty")
	}
}

func TestStore_UnreadGuardRecordsNothing(t *testing.T) {
	s := NewStore()
	ids := newNodes(2)
	key := Ensure(s, ids[0], func() count { return 0 })

	Get[count](s, key, ids[1]).Release()
	m := GetMut[count](s, key, ids[1])
	m.Release()

	if len(s.Dependents(key)) != 0 {
		t.Error("undereferenced guard recorded a dependency")
	}
	if s.HasChanges() {
		t.Error("unwritten exclusive guard marked the store dirty")
	}
}

func TestStore_WriteMarksDirty(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	key := Ensure(s, node, func() count { return 0 })

	m := GetMut[count](s, key, arena.ID{})
	m.Set(0) // same value still counts as a change
	m.Release()

	if !s.IsDirty(key) {
		t.Fatal("write did not mark the key dirty")
	}
	s.ClearChanges()
	if s.HasChanges() {
		t.Error("ClearChanges left dirty keys")
	}
}

func TestStore_PtrMutatesInPlace(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	key := Ensure(s, node, func() []string { return nil })
	m := GetMut[[]string](s, key, arena.ID{})
	p := m.Ptr()
	*p = append(*p, "a", "b")
	m.Release()
	if got := Peek[[]string](s, key); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestStore_AliasingPanics(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	key := Ensure(s, node, func() count { return 0 })

	t.Run("mut while shared", func(t *testing.T) {
		r := Get[count](s, key, arena.ID{})
		defer r.Release()
		expectInvariant(t, errors.KindAliasing, func() { GetMut[count](s, key, arena.ID{}) })
	})
	t.Run("shared while mut", func(t *testing.T) {
		m := GetMut[count](s, key, arena.ID{})
		defer m.Release()
		expectInvariant(t, errors.KindAliasing, func() { Get[count](s, key, arena.ID{}) })
	})
	t.Run("two shared", func(t *testing.T) {
		a := Get[count](s, key, arena.ID{})
		b := Get[count](s, key, arena.ID{})
		a.Release()
		b.Release()
	})
	t.Run("use after release", func(t *testing.T) {
		r := Get[count](s, key, arena.ID{})
		r.Release()
		expectInvariant(t, errors.KindAliasing, func() { r.Value() })
	})
}

func TestStore_PeekWhileExclusivePanics(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	key := Ensure(s, node, func() count { return 4 })

	m := GetMut[count](s, key, arena.ID{})
	expectInvariant(t, errors.KindAliasing, func() { Peek[count](s, key) })
	m.Release()

	if got := Peek[count](s, key); got != 4 {
		t.Errorf("Peek after release = %d, want 4", got)
	}
	if s.Edges() != 0 {
		t.Errorf("Peek recorded %d edges", s.Edges())
	}
}

func TestStore_PeekWrongTypePanics(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	key := Ensure(s, node, func() count { return 0 })
	expectInvariant(t, errors.KindState, func() { Peek[label](s, key) })
}

func TestStore_MissingEntryPanics(t *testing.T) {
	s := NewStore()
	node := newNodes(1)[0]
	expectInvariant(t, errors.KindState, func() {
		Get[count](s, KeyFor[count](node), arena.ID{})
	})
}

func TestStore_ClearDependencies(t *testing.T) {
	s := NewStore()
	ids := newNodes(2)
	key := Ensure(s, ids[0], func() count { return 0 })
	r := Get[count](s, key, ids[1])
	r.Value()
	r.Release()

	s.ClearDependencies(ids[1])
	if s.DependsOn(ids[1], key) {
		t.Error("dependency survived ClearDependencies")
	}
	if !s.Contains(key) {
		t.Error("ClearDependencies removed the entry")
	}
}

func TestStore_RemoveOwnerCleansUp(t *testing.T) {
	s := NewStore()
	ids := newNodes(3)
	owner, reader, other := ids[0], ids[1], ids[2]
	key := Ensure(s, owner, func() count { return 0 })
	otherKey := Ensure(s, other, func() count { return 0 })

	for _, k := range []Key{key, otherKey} {
		r := Get[count](s, k, reader)
		r.Value()
		r.Release()
	}
	// owner also reads the other node's state
	r := Get[count](s, otherKey, owner)
	r.Value()
	r.Release()
	m := GetMut[count](s, key, arena.ID{})
	m.Set(1)
	m.Release()

	s.RemoveOwner(owner)

	if s.Contains(key) {
		t.Error("owned entry survived RemoveOwner")
	}
	if s.IsDirty(key) {
		t.Error("dirty mark survived RemoveOwner")
	}
	if s.DependsOn(owner, otherKey) {
		t.Error("owner's outgoing dependency survived RemoveOwner")
	}
	if !s.DependsOn(reader, otherKey) {
		t.Error("unrelated dependency was removed")
	}
	if s.Edges() != 1 {
		t.Errorf("Edges() = %d, want 1", s.Edges())
	}
}

func TestGraph_RemoveDropsEmptySets(t *testing.T) {
	g := NewGraph[int, string]()
	g.Add(1, "a")
	g.Add(1, "b")
	g.Add(2, "a")
	g.RemoveV("a")
	if g.Has(1, "a") || g.Has(2, "a") {
		t.Error("RemoveV left edges")
	}
	if len(g.uv) != 1 {
		t.Errorf("len(uv) = %d, want 1", len(g.uv))
	}
	g.RemoveU(1)
	if g.Edges() != 0 || len(g.vu) != 0 {
		t.Error("RemoveU left edges")
	}
}
