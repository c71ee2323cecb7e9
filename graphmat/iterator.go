// File: iterator.go
// Role: directional cursors over a store.
//
// Both cursors are pure: each Next resolves the current coordinate, then steps
// by one delta. There is no wraparound, bound or restart. The first absent
// value (unset cell or placeholder) is reported as ok == false; calling Next
// again simply continues from the following coordinate.
//
// A live cursor borrows the whole store: mutating the store between calls is
// not supported.
package graphmat

import (
	"iter"

	"github.com/katalvlaran/graphmat/arena"
	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
)

// Iterator walks a store in one direction fixed at construction.
//
// For North, East and Up the iterator follows the current node's own forward
// link when there is one and falls back to leader resolution only when the
// next cell is not linked from the current one (typically when crossing into
// the next cube).
type Iterator[T any] struct {
	g     *GraphMat[T]
	pos   coord.Coord
	dir   direction.Direction
	delta coord.Coord

	forward bool
	link    link
	next    arena.Index // node at pos when known from a link, else zero
}

// Iter returns a cursor starting at start and stepping in dir.
// It panics if dir is not a valid direction.
func (g *GraphMat[T]) Iter(dir direction.Direction, start coord.Coord) *Iterator[T] {
	it := &Iterator[T]{g: g, pos: start, dir: dir, delta: dir.Delta(), forward: dir.Forward()}
	if it.forward {
		it.link = forwardLink[dir]
	}
	return it
}

// Pos returns the coordinate the next call to Next will resolve.
func (it *Iterator[T]) Pos() coord.Coord { return it.pos }

// Direction returns the fixed stepping direction.
func (it *Iterator[T]) Direction() direction.Direction { return it.dir }

// Next resolves the current coordinate, advances, and returns the coordinate
// it resolved with its value. ok is false when that cell holds no value.
func (it *Iterator[T]) Next() (at coord.Coord, v T, ok bool) {
	at = it.pos
	idx := it.next
	if idx.IsZero() || !it.g.nodes.Contains(idx) {
		idx, ok = it.g.locate(at)
		if !ok {
			idx = arena.Index{}
		}
	}
	it.pos = at.Add(it.delta)
	it.next = arena.Index{}

	if idx.IsZero() {
		return at, v, false
	}
	n := it.g.mustNode(idx)
	if it.forward {
		it.next = n.links[it.link]
	}
	if n.placeholder() {
		return at, v, false
	}
	return at, n.value, true
}

// All yields (coordinate, value) pairs until the first absent value.
func (it *Iterator[T]) All() iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for {
			c, v, ok := it.Next()
			if !ok || !yield(c, v) {
				return
			}
		}
	}
}

// FreeIterator walks a store in a direction that may change between steps,
// which allows paths such as staircases.
type FreeIterator[T any] struct {
	g   *GraphMat[T]
	pos coord.Coord
	dir direction.Direction
}

// IterAnyDirection returns a cursor starting at start and initially stepping
// in dir. It panics if dir is not a valid direction.
func (g *GraphMat[T]) IterAnyDirection(start coord.Coord, dir direction.Direction) *FreeIterator[T] {
	_ = dir.Delta()
	return &FreeIterator[T]{g: g, pos: start, dir: dir}
}

// Pos returns the coordinate the next call to Next will resolve.
func (it *FreeIterator[T]) Pos() coord.Coord { return it.pos }

// Direction returns the current stepping direction.
func (it *FreeIterator[T]) Direction() direction.Direction { return it.dir }

// SetDirection changes the stepping direction for the following Next calls
// and returns the previous one. It panics if d is not a valid direction.
func (it *FreeIterator[T]) SetDirection(d direction.Direction) direction.Direction {
	_ = d.Delta()
	prev := it.dir
	it.dir = d
	return prev
}

// Next resolves the current coordinate, advances by the current direction,
// and returns the coordinate it resolved with its value.
func (it *FreeIterator[T]) Next() (at coord.Coord, v T, ok bool) {
	at = it.pos
	v, ok = it.g.Get(at)
	it.pos = at.Add(it.dir.Delta())
	return at, v, ok
}

// All yields (coordinate, value) pairs until the first absent value. The
// loop body may call SetDirection to steer the walk.
func (it *FreeIterator[T]) All() iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for {
			c, v, ok := it.Next()
			if !ok || !yield(c, v) {
				return
			}
		}
	}
}
