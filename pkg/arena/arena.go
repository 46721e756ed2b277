// Package arena provides a generational slot map used to give retained nodes
// stable, cheap, comparable identities.
//
// An ID stays valid until the entry it names is removed. Slots are recycled,
// but every reuse bumps the slot generation, so an ID held past removal never
// resolves to a newer entry.
package arena

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/errors"
)

// ID identifies an entry in an Arena. The zero ID is never issued.
type ID struct {
	index      uint32
	generation uint32
}

// IsValid reports whether id was issued by an Arena (it may still be stale).
func (id ID) IsValid() bool {
	return id.generation != 0
}

// Index returns the slot index, useful for stable debug output.
func (id ID) Index() int {
	return int(id.index)
}

func (id ID) String() string {
	if !id.IsValid() {
		return "ID(invalid)"
	}
	return fmt.Sprintf("ID(%d.%d)", id.index, id.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena stores values of type T addressed by ID.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	len   int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value and returns its new ID.
func (a *Arena[T]) Insert(value T) ID {
	a.len++
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[index]
		s.generation++
		s.value = value
		s.occupied = true
		return ID{index: index, generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: value, generation: 1, occupied: true})
	return ID{index: uint32(len(a.slots) - 1), generation: 1}
}

// Remove deletes the entry for id and returns its value.
// It panics if id does not name a live entry.
func (a *Arena[T]) Remove(id ID) T {
	s := a.slot("arena.Remove", id)
	value := s.value
	var zero T
	s.value = zero
	s.occupied = false
	a.free = append(a.free, id.index)
	a.len--
	return value
}

// Get returns a pointer to the value for id. The pointer is valid until the
// next Insert. It panics if id does not name a live entry.
func (a *Arena[T]) Get(id ID) *T {
	return &a.slot("arena.Get", id).value
}

// Lookup is like Get but reports a missing entry instead of panicking.
func (a *Arena[T]) Lookup(id ID) (*T, bool) {
	if !a.Contains(id) {
		return nil, false
	}
	return &a.slots[id.index].value, true
}

// Contains reports whether id names a live entry.
func (a *Arena[T]) Contains(id ID) bool {
	if !id.IsValid() || int(id.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[id.index]
	return s.occupied && s.generation == id.generation
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return a.len
}

// All calls fn for every live entry in slot order until fn returns false.
func (a *Arena[T]) All(fn func(ID, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(ID{index: uint32(i), generation: s.generation}, &s.value) {
			return
		}
	}
}

func (a *Arena[T]) slot(op string, id ID) *slot[T] {
	if !a.Contains(id) {
		errors.Invariant(op, errors.KindIdentity, "node not found: %v", id)
	}
	return &a.slots[id.index]
}
