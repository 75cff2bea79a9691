// Package arena provides a generational slot arena.
//
// Every stored value is addressed by an ID carrying the slot index and the
// generation the slot had when the value was inserted. Removing a value bumps
// the slot generation, so an ID that outlives its value never resolves to a
// newer value stored in the same slot.
package arena

import (
	"cmp"
	"fmt"
	"iter"
)

// ID addresses a value stored in an Arena. The zero ID is never valid.
type ID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the ID is the zero (absent) ID.
func (id ID) IsZero() bool {
	return id.generation == 0
}

func (id ID) String() string {
	if id.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d.%d", id.index, id.generation)
}

// Compare orders ids by slot index, then generation.
func (id ID) Compare(other ID) int {
	if c := cmp.Compare(id.index, other.index); c != 0 {
		return c
	}
	return cmp.Compare(id.generation, other.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena stores values of type T behind generational IDs.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// WithCapacity creates an empty arena with room for n values.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, n)}
}

// Insert stores v and returns its ID.
func (a *Arena[T]) Insert(v T) ID {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.occupied = true
		return ID{index: idx, generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: v, generation: 1, occupied: true})
	return ID{index: uint32(len(a.slots) - 1), generation: 1}
}

func (a *Arena[T]) lookup(id ID) *slot[T] {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.occupied || s.generation != id.generation {
		return nil
	}
	return s
}

// Get returns a pointer to the value stored under id.
// The pointer is invalidated by the next Insert.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	s := a.lookup(id)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether id refers to a live value.
func (a *Arena[T]) Contains(id ID) bool {
	return a.lookup(id) != nil
}

// Remove deletes the value stored under id and returns it.
func (a *Arena[T]) Remove(id ID) (T, bool) {
	var zero T
	s := a.lookup(id)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	a.free = append(a.free, id.index)
	a.count--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// Clear removes every value. IDs issued before Clear stay invalid.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.occupied {
			s.value = zero
			s.occupied = false
			s.generation++
		}
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}

// All iterates over live values in slot order.
func (a *Arena[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(ID{index: uint32(i), generation: s.generation}, &s.value) {
				return
			}
		}
	}
}
