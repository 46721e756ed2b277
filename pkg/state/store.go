// Package state stores per-node state values and tracks which nodes read which
// values, so a write can be fanned out to exactly the nodes that must rebuild.
//
// Access goes through scope guards. A guard records a dependency only if its
// value was actually read, and marks the entry dirty only if it was actually
// written. Guards must be released; the core package releases them for views.
package state

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
)

// Key names one state entry: at most one value per owner node and type.
type Key struct {
	Owner arena.ID
	Type  reflect.Type
}

func (k Key) String() string {
	return fmt.Sprintf("%v/%v", k.Owner, k.Type)
}

type entry struct {
	value   any // always a pointer to the stored value
	readers int
	writer  bool
}

// Store holds state entries, the dirty set, and the node/key dependency graph.
type Store struct {
	entries map[Key]*entry
	owners  map[arena.ID][]Key
	dirty   map[Key]struct{}
	deps    *Graph[arena.ID, Key]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[Key]*entry),
		owners:  make(map[arena.ID][]Key),
		dirty:   make(map[Key]struct{}),
		deps:    NewGraph[arena.ID, Key](),
	}
}

// KeyFor returns the key of the T entry owned by owner.
func KeyFor[T any](owner arena.ID) Key {
	return Key{Owner: owner, Type: reflect.TypeFor[T]()}
}

// Ensure creates the T entry for owner using init if it does not exist yet.
// init is not called when the entry already exists.
func Ensure[T any](s *Store, owner arena.ID, init func() T) Key {
	key := KeyFor[T](owner)
	if _, ok := s.entries[key]; ok {
		return key
	}
	p := new(T)
	if init != nil {
		*p = init()
	}
	s.entries[key] = &entry{value: p}
	s.owners[owner] = append(s.owners[owner], key)
	return key
}

// Contains reports whether key has an entry.
func (s *Store) Contains(key Key) bool {
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) lookup(op string, key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		errors.Invariant(op, errors.KindState, "no state entry for %v", key)
	}
	return e
}

// Get opens a shared guard on the T entry at key. reader is the node that
// will depend on the value if it is read; pass the zero ID for untracked
// access.
func Get[T any](s *Store, key Key, reader arena.ID) *Ref[T] {
	e := s.lookup("state.Get", key)
	if e.writer {
		errors.Invariant("state.Get", errors.KindAliasing, "%v is exclusively borrowed", key)
	}
	p, ok := e.value.(*T)
	if !ok {
		errors.Invariant("state.Get", errors.KindState, "%v holds %T, not %v", key, e.value, reflect.TypeFor[T]())
	}
	e.readers++
	return &Ref[T]{store: s, entry: e, key: key, reader: reader, value: p}
}

// GetMut opens an exclusive guard on the T entry at key.
func GetMut[T any](s *Store, key Key, reader arena.ID) *RefMut[T] {
	e := s.lookup("state.GetMut", key)
	if e.writer || e.readers > 0 {
		errors.Invariant("state.GetMut", errors.KindAliasing, "%v is already borrowed", key)
	}
	p, ok := e.value.(*T)
	if !ok {
		errors.Invariant("state.GetMut", errors.KindState, "%v holds %T, not %v", key, e.value, reflect.TypeFor[T]())
	}
	e.writer = true
	return &RefMut[T]{store: s, entry: e, key: key, reader: reader, value: p}
}

// Peek returns the T value at key without recording anything. It obeys the
// same borrow rules as Get.
func Peek[T any](s *Store, key Key) T {
	e := s.lookup("state.Peek", key)
	if e.writer {
		errors.Invariant("state.Peek", errors.KindAliasing, "%v is exclusively borrowed", key)
	}
	p, ok := e.value.(*T)
	if !ok {
		errors.Invariant("state.Peek", errors.KindState, "%v holds %T, not %v", key, e.value, reflect.TypeFor[T]())
	}
	return *p
}

func (s *Store) read(key Key, reader arena.ID) {
	if reader.IsValid() {
		s.deps.Add(reader, key)
	}
}

func (s *Store) write(key Key) {
	if _, ok := s.entries[key]; ok {
		s.dirty[key] = struct{}{}
	}
}

// HasChanges reports whether any entry was written since the last
// ClearChanges.
func (s *Store) HasChanges() bool {
	return len(s.dirty) > 0
}

// Dirty returns the written keys in a stable order.
func (s *Store) Dirty() []Key {
	keys := make([]Key, 0, len(s.dirty))
	for k := range s.dirty {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// IsDirty reports whether key was written since the last ClearChanges.
func (s *Store) IsDirty(key Key) bool {
	_, ok := s.dirty[key]
	return ok
}

// ClearChanges empties the dirty set.
func (s *Store) ClearChanges() {
	clear(s.dirty)
}

// Dependents returns the nodes whose last build read key.
func (s *Store) Dependents(key Key) []arena.ID {
	var ids []arena.ID
	s.deps.Us(key, func(id arena.ID) { ids = append(ids, id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i].Index() < ids[j].Index() })
	return ids
}

// Dependencies returns the keys node read during its last build.
func (s *Store) Dependencies(node arena.ID) []Key {
	var keys []Key
	s.deps.Vs(node, func(k Key) { keys = append(keys, k) })
	sortKeys(keys)
	return keys
}

// DependsOn reports whether node currently depends on key.
func (s *Store) DependsOn(node arena.ID, key Key) bool {
	return s.deps.Has(node, key)
}

// ClearDependencies forgets everything node read. Called before a rebuild so
// the new build records a fresh dependency set.
func (s *Store) ClearDependencies(node arena.ID) {
	s.deps.RemoveU(node)
}

// RemoveOwner drops the entries owned by node, their dirty marks, and every
// dependency edge on either side of node.
func (s *Store) RemoveOwner(node arena.ID) {
	for _, key := range s.owners[node] {
		delete(s.entries, key)
		delete(s.dirty, key)
		s.deps.RemoveV(key)
	}
	delete(s.owners, node)
	s.deps.RemoveU(node)
}

// Edges returns the number of dependency edges.
func (s *Store) Edges() int {
	return s.deps.Edges()
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Owner != keys[j].Owner {
			return keys[i].Owner.Index() < keys[j].Owner.Index()
		}
		return keys[i].Type.String() < keys[j].Type.String()
	})
}
