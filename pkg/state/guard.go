package state

import (
	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/errors"
)

// Ref is a shared guard over a state value. Reading through it records a
// dependency for its reader when the guard is released.
type Ref[T any] struct {
	store    *Store
	entry    *entry
	key      Key
	reader   arena.ID
	value    *T
	accessed bool
	released bool
}

// Key returns the guarded key.
func (r *Ref[T]) Key() Key { return r.key }

// Value returns the current value and marks the guard as read.
func (r *Ref[T]) Value() T {
	r.check("state.Ref.Value")
	r.accessed = true
	return *r.value
}

// Released reports whether Release was called.
func (r *Ref[T]) Released() bool { return r.released }

// Release ends the borrow and commits the access record.
func (r *Ref[T]) Release() {
	r.check("state.Ref.Release")
	r.released = true
	r.entry.readers--
	if r.accessed {
		r.store.read(r.key, r.reader)
	}
}

func (r *Ref[T]) check(op string) {
	if r.released {
		errors.Invariant(op, errors.KindAliasing, "guard for %v used after release", r.key)
	}
}

// RefMut is an exclusive guard over a state value. Writing through it marks
// the entry dirty when the guard is released, even if the written value is
// equal to the previous one.
type RefMut[T any] struct {
	store    *Store
	entry    *entry
	key      Key
	reader   arena.ID
	value    *T
	accessed bool
	written  bool
	released bool
}

// Key returns the guarded key.
func (r *RefMut[T]) Key() Key { return r.key }

// Value returns the current value and marks the guard as read.
func (r *RefMut[T]) Value() T {
	r.check("state.RefMut.Value")
	r.accessed = true
	return *r.value
}

// Ptr returns a pointer for in-place mutation and marks the guard as written.
// The pointer must not be retained past Release.
func (r *RefMut[T]) Ptr() *T {
	r.check("state.RefMut.Ptr")
	r.written = true
	return r.value
}

// Set replaces the value and marks the guard as written.
func (r *RefMut[T]) Set(v T) {
	*r.Ptr() = v
}

// Released reports whether Release was called.
func (r *RefMut[T]) Released() bool { return r.released }

// Release ends the borrow and commits the access record.
func (r *RefMut[T]) Release() {
	r.check("state.RefMut.Release")
	r.released = true
	r.entry.writer = false
	if r.accessed {
		r.store.read(r.key, r.reader)
	}
	if r.written {
		r.store.write(r.key)
	}
}

func (r *RefMut[T]) check(op string) {
	if r.released {
		errors.Invariant(op, errors.KindAliasing, "guard for %v used after release", r.key)
	}
}
