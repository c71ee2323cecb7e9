// File: graphmat.go
// Role: store type, construction, point lookups and writes.
//
// Invariants:
//   - index holds leader coordinates only; each value is a live arena index.
//   - Every non-zero link resolves to a live node one step along its axis.
//   - Satellites are reachable only through their leader's hop chain.
package graphmat

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphmat/arena"
	"github.com/katalvlaran/graphmat/coord"
)

// GraphMat is a sparse 3D store of values of type T.
// The zero value is not usable; construct with New.
type GraphMat[T any] struct {
	nodes *arena.Arena[node[T]]
	index map[coord.Coord]arena.Index // leader coordinate → leader node

	log     *slog.Logger
	metrics *Metrics
}

// New creates an empty store.
// Complexity: O(1), or O(capacity) with WithCapacity.
func New[T any](opts ...Option) *GraphMat[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	return &GraphMat[T]{
		nodes:   arena.WithCapacity[node[T]](o.capacity),
		index:   make(map[coord.Coord]arena.Index, o.capacity/8),
		log:     o.logger,
		metrics: o.metrics,
	}
}

// mustNode resolves an index the store itself handed out. A miss means a
// link or index entry outlived its node, which the store never allows.
func (g *GraphMat[T]) mustNode(i arena.Index) *node[T] {
	n, ok := g.nodes.Get(i)
	if !ok {
		panic(fmt.Sprintf("graphmat: dangling node index %d/%d", i.Slot(), i.Generation()))
	}
	return n
}

// locate returns the arena index of the node at c, placeholder or not.
//
// Implementation:
//   - Stage 1: look the leader of c up in the index; a miss ends the search.
//   - Stage 2: if c is the leader, done.
//   - Stage 3: follow the hop chain for c's cube offset; the first missing
//     link ends the search.
func (g *GraphMat[T]) locate(c coord.Coord) (arena.Index, bool) {
	lead := c.Leader()
	idx, ok := g.index[lead]
	if !ok {
		return arena.Index{}, false
	}
	if lead == c {
		return idx, true
	}
	for _, l := range hopChain(c.Sub(lead)) {
		idx = g.mustNode(idx).links[l]
		if idx.IsZero() {
			return arena.Index{}, false
		}
	}
	return idx, true
}

// Get returns the value stored at c. The second result is false when nothing
// was ever set at c, when c was freed, or when c only holds a placeholder.
//
// Complexity: O(1) — one map lookup plus at most three hops.
func (g *GraphMat[T]) Get(c coord.Coord) (T, bool) {
	g.metrics.op(opGet)
	var zero T
	idx, ok := g.locate(c)
	if !ok {
		return zero, false
	}
	n := g.mustNode(idx)
	if n.placeholder() {
		return zero, false
	}
	return n.value, true
}

// GetMut returns a pointer to the value stored at c for in-place updates.
// The pointer is only valid until the next Set, Reserve or free on g.
//
// Complexity: O(1).
func (g *GraphMat[T]) GetMut(c coord.Coord) (*T, bool) {
	g.metrics.op(opGetMut)
	idx, ok := g.locate(c)
	if !ok {
		return nil, false
	}
	n := g.mustNode(idx)
	if n.placeholder() {
		return nil, false
	}
	return &n.value, true
}

// Contains reports whether a value is stored at c.
func (g *GraphMat[T]) Contains(c coord.Coord) bool {
	idx, ok := g.locate(c)
	return ok && !g.mustNode(idx).placeholder()
}

// Set stores v at c, replacing any previous value.
//
// Implementation:
//   - Stage 1: if c is a leader, overwrite the leader's payload in place or
//     create the leader and its index entry.
//   - Stage 2: otherwise make sure the leader exists, inserting a placeholder
//     leader if needed (an existing leader payload is left untouched).
//   - Stage 3: replay the hop chain; each missing intermediate link gets a new
//     placeholder at its absolute coordinate.
//   - Stage 4: link a fresh node carrying v at the final hop. If a node was
//     already there, its slot is removed and the fresh node inherits its
//     links, so corners further down the chain stay reachable.
//
// Errors:
//   - None; every int64 coordinate is accepted. A hop chain that does not match the cube layout panics, which
//     can only happen through a bug in the leader arithmetic.
//
// Determinism:
//   - Deterministic; the node layout depends only on the sequence of calls.
//
// Complexity:
//   - Time O(1) amortized, at most three new nodes; Space O(1).
func (g *GraphMat[T]) Set(c coord.Coord, v T) {
	g.metrics.op(opSet)
	defer g.report()

	lead := c.Leader()
	lidx, ok := g.index[lead]
	if lead == c {
		if ok {
			n := g.mustNode(lidx)
			n.value, n.has = v, true
			return
		}
		g.index[lead] = g.nodes.Insert(node[T]{value: v, has: true, pos: c})
		return
	}

	if !ok {
		lidx = g.insertPlaceholder(lead)
		g.index[lead] = lidx
	}

	chain := hopChain(c.Sub(lead))
	cur, pos := lidx, lead
	for _, l := range chain[:len(chain)-1] {
		pos = pos.Add(linkDelta[l])
		next := g.mustNode(cur).links[l]
		if next.IsZero() {
			next = g.insertPlaceholder(pos)
			// Insert may have moved the arena; fetch the parent again.
			g.mustNode(cur).links[l] = next
		}
		cur = next
	}

	last := chain[len(chain)-1]
	fresh := node[T]{value: v, has: true, pos: c}
	if stale := g.mustNode(cur).links[last]; !stale.IsZero() {
		old, _ := g.nodes.Remove(stale)
		fresh.links = old.links
	}
	idx := g.nodes.Insert(fresh)
	g.mustNode(cur).links[last] = idx
}

func (g *GraphMat[T]) insertPlaceholder(pos coord.Coord) arena.Index {
	g.metrics.placeholder()
	return g.nodes.Insert(node[T]{pos: pos})
}

func (g *GraphMat[T]) report() {
	g.metrics.size(g.nodes.Len(), len(g.index))
}

// Len returns the number of live nodes, placeholders included.
func (g *GraphMat[T]) Len() int { return g.nodes.Len() }

// Leaders returns the number of entries in the coordinate index.
func (g *GraphMat[T]) Leaders() int { return len(g.index) }

// Placeholders counts nodes without a payload.
// Complexity: O(N).
func (g *GraphMat[T]) Placeholders() int {
	var n int
	for _, nd := range g.nodes.All() {
		if nd.placeholder() {
			n++
		}
	}
	return n
}
