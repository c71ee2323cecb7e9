// File: scan.go
// Role: whole-store scans, removal and capacity management.
//
// Determinism:
//   - Find and FindIf return the first match in arena slot order, which is
//     unrelated to coordinate order. Treat the result as "some match".
//   - FreeAll visits leaders in map order; the set of freed cubes does not
//     depend on that order.
package graphmat

import (
	"fmt"

	"github.com/katalvlaran/graphmat/arena"
	"github.com/katalvlaran/graphmat/coord"
)

// Find returns the coordinate of some cell holding v.
// Placeholders are never matched.
//
// Complexity: O(N) over every arena slot, placeholders included.
func Find[T comparable](g *GraphMat[T], v T) (coord.Coord, bool) {
	return g.FindIf(func(x T) bool { return x == v })
}

// FindIf returns the coordinate of the first value, in arena order, for which
// pred reports true.
//
// Complexity: O(N).
func (g *GraphMat[T]) FindIf(pred func(T) bool) (coord.Coord, bool) {
	g.metrics.op(opFind)
	for _, n := range g.nodes.All() {
		if n.placeholder() {
			continue
		}
		if pred(n.value) {
			return n.pos, true
		}
	}
	return coord.Coord{}, false
}

// FreePos removes the cube led by c: the leader node, its index entry and every
// satellite reachable from it. Non-leader coordinates are never index keys and
// are left alone.
//
// Returns:
//   - bool: true iff c was a leader key and its cube was removed.
//
// Errors:
//   - None.
//
// Determinism:
//   - Deterministic; the cube is walked over its fixed links.
//
// Complexity:
//   - Time O(1), at most eight nodes per cube.
func (g *GraphMat[T]) FreePos(c coord.Coord) bool {
	g.metrics.op(opFreePos)
	idx, ok := g.index[c]
	if !ok {
		return false
	}
	delete(g.index, c)
	n := g.freeCube(idx)
	g.log.Debug("graphmat: freed cube", "leader", c, "nodes", n)
	g.report()
	return true
}

// FreeAll removes every cube whose leader holds a value matching pred.
// Only leader payloads are tested; placeholder leaders and satellite values
// are not inspected.
//
// Inputs:
//   - pred: called once per leader with a value; must not mutate g.
//
// Returns:
//   - int: the number of cubes removed.
//
// Errors:
//   - None.
//
// Determinism:
//   - pred sees leaders in map order. The set of freed cubes does not depend
//     on that order as long as pred is pure.
//
// Complexity:
//   - Time O(L + freed nodes), L = Leaders(); Space O(matching leaders).
func (g *GraphMat[T]) FreeAll(pred func(T) bool) int {
	g.metrics.op(opFreeAll)
	var doomed []coord.Coord
	for c, idx := range g.index {
		n := g.mustNode(idx)
		if !n.placeholder() && pred(n.value) {
			doomed = append(doomed, c)
		}
	}
	var nodes int
	for _, c := range doomed {
		nodes += g.freeCube(g.index[c])
		delete(g.index, c)
	}
	if len(doomed) > 0 {
		g.log.Debug("graphmat: freed cubes", "cubes", len(doomed), "nodes", nodes)
	}
	g.report()
	return len(doomed)
}

// freeCube removes the node at root and everything reachable over its links.
// Links never leave a cube, so this is bounded by eight nodes.
func (g *GraphMat[T]) freeCube(root arena.Index) int {
	var (
		stack = [8]arena.Index{root}
		top   = 1
		freed int
	)
	for top > 0 {
		top--
		n, ok := g.nodes.Remove(stack[top])
		if !ok {
			continue
		}
		freed++
		for _, next := range n.links {
			if next.IsZero() {
				continue
			}
			if top == len(stack) {
				panic(fmt.Sprintf("graphmat: cube at %v links more than eight nodes", n.pos))
			}
			stack[top] = next
			top++
		}
	}
	g.metrics.freedNodes(freed)
	return freed
}

// Reserve presizes the store for about capacity addressable cells. Capacity is
// only a hint; correctness never depends on it.
//
// Implementation:
//   - Stage 1: reject a negative capacity.
//   - Stage 2: grow the arena by capacity - Len(). A request the arena cannot
//     address fails here, before anything is allocated.
//   - Stage 3: rebuild the index with room for (capacity - Leaders())/8 more
//     leaders, since one leader serves up to eight cells.
//
// A capacity at or below the current size is clamped: nothing grows and the
// call succeeds.
//
// Returns:
//   - error: nil on success, including clamped calls.
//
// Errors:
//   - ErrNegativeCapacity: if capacity < 0.
//   - arena.ErrFull (wrapped): if capacity exceeds the arena's slot space.
//     The store is left unchanged.
//
// Determinism:
//   - Deterministic; stored values and links are untouched.
//
// Complexity:
//   - Time O(Leaders() + capacity) when the index is rebuilt, else O(1).
func (g *GraphMat[T]) Reserve(capacity int) error {
	g.metrics.op(opReserve)
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}

	leaders, nodes := len(g.index), g.nodes.Len()
	if capacity <= leaders || capacity <= nodes {
		g.log.Debug("graphmat: reserve clamped",
			"capacity", capacity, "leaders", leaders, "nodes", nodes)
	}

	if extra := capacity - nodes; extra > 0 {
		if err := g.nodes.Reserve(extra); err != nil {
			return fmt.Errorf("graphmat: reserve %d: %w", capacity, err)
		}
	}
	if extra := (capacity - leaders) / 8; extra > 0 {
		grown := make(map[coord.Coord]arena.Index, leaders+extra)
		for c, idx := range g.index {
			grown[c] = idx
		}
		g.index = grown
	}
	return nil
}

// Clear removes every node and index entry.
func (g *GraphMat[T]) Clear() {
	freed := g.nodes.Len()
	g.nodes.Clear()
	clear(g.index)
	g.metrics.freedNodes(freed)
	g.report()
}
