package arena

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrFull indicates a Reserve that would need more slots than an Index can
// address.
var ErrFull = errors.New("arena: slot space exhausted")

// slotLimit is the number of addressable slots; slot numbers are uint32.
var slotLimit uint64 = math.MaxUint32

// Index is a generation-tagged handle to an arena slot.
type Index struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether i is the zero Index, which never refers to a value.
func (i Index) IsZero() bool { return i.gen == 0 }

// Slot exposes the raw slot number, mainly for diagnostics.
func (i Index) Slot() uint32 { return i.slot }

// Generation exposes the generation the slot had when i was issued.
func (i Index) Generation() uint32 { return i.gen }

type entry[T any] struct {
	value    T
	gen      uint32 // current generation of the slot; starts at 1
	occupied bool
}

// Arena is a generational slot allocator for values of type T.
type Arena[T any] struct {
	entries []entry[T]
	free    []uint32 // LIFO stack of vacant slots
	length  int
}

// New returns an empty Arena.
func New[T any]() *Arena[T] { return &Arena[T]{} }

// WithCapacity returns an empty Arena able to hold n values without growing.
func WithCapacity[T any](n int) *Arena[T] {
	if n < 0 {
		n = 0
	}
	return &Arena[T]{entries: make([]entry[T], 0, n)}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.length }

// Cap returns how many values the arena holds before its backing slice grows.
func (a *Arena[T]) Cap() int { return cap(a.entries) }

// Insert stores v and returns its handle. It panics when every addressable
// slot is live.
func (a *Arena[T]) Insert(v T) Index {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		e := &a.entries[slot]
		e.value = v
		e.occupied = true
		a.length++
		return Index{slot: slot, gen: e.gen}
	}
	if uint64(len(a.entries)) >= slotLimit {
		panic(fmt.Sprintf("arena: slot space exhausted at %d slots", len(a.entries)))
	}
	slot := uint32(len(a.entries))
	a.entries = append(a.entries, entry[T]{value: v, gen: 1, occupied: true})
	a.length++
	return Index{slot: slot, gen: 1}
}

func (a *Arena[T]) lookup(i Index) *entry[T] {
	if i.gen == 0 || int(i.slot) >= len(a.entries) {
		return nil
	}
	e := &a.entries[i.slot]
	if !e.occupied || e.gen != i.gen {
		return nil
	}
	return e
}

// Get returns a pointer to the value behind i, or false if i is stale or zero.
// The pointer is valid until the next Insert or Reserve grows the arena.
func (a *Arena[T]) Get(i Index) (*T, bool) {
	e := a.lookup(i)
	if e == nil {
		return nil, false
	}
	return &e.value, true
}

// Contains reports whether i refers to a live value.
func (a *Arena[T]) Contains(i Index) bool { return a.lookup(i) != nil }

// Remove deletes the value behind i and returns it. Stale and zero indices
// are ignored.
func (a *Arena[T]) Remove(i Index) (T, bool) {
	var zero T
	e := a.lookup(i)
	if e == nil {
		return zero, false
	}
	v := e.value
	e.value = zero
	e.occupied = false
	e.gen++
	if e.gen == 0 {
		// wrapped; generation 0 is reserved for the zero Index
		e.gen = 1
	}
	a.free = append(a.free, i.slot)
	a.length--
	return v, true
}

// Reserve grows the arena so that at least n more values fit without
// reallocating. Non-positive n is a no-op. A request past the addressable slot
// space returns ErrFull and leaves the arena unchanged.
func (a *Arena[T]) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	need := n - len(a.free) // freed slots are reused before appending
	if need <= 0 || cap(a.entries)-len(a.entries) >= need {
		return nil
	}
	if uint64(need) > slotLimit-uint64(len(a.entries)) {
		return fmt.Errorf("%w: %d more slots requested, %d in use", ErrFull, need, len(a.entries))
	}
	grown := make([]entry[T], len(a.entries), len(a.entries)+need)
	copy(grown, a.entries)
	a.entries = grown
	return nil
}

// All yields every live value with its Index in slot order.
func (a *Arena[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for s := range a.entries {
			e := &a.entries[s]
			if !e.occupied {
				continue
			}
			if !yield(Index{slot: uint32(s), gen: e.gen}, &e.value) {
				return
			}
		}
	}
}

// Clear removes every value. Outstanding indices become stale.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for s := len(a.entries) - 1; s >= 0; s-- {
		e := &a.entries[s]
		if e.occupied {
			e.value = zero
			e.occupied = false
			e.gen++
			if e.gen == 0 {
				e.gen = 1
			}
		}
		a.free = append(a.free, uint32(s))
	}
	a.length = 0
}
