// Package graphmat is a sparse 3D store keyed by signed integer coordinates
// that still supports cheap directional traversal between neighbouring cells.
//
// What:
//
//   - Space is grouped into 2×2×2 cubes. Only the all-even "leader" corner of
//     each cube is a key of the coordinate index; the other seven corners
//     ("satellites") hang off the leader through forward links.
//   - Every node lives in a generational arena (package arena) and carries at
//     most three links: north (+y), east (+x) and sky (+z).
//   - A node without a payload is a placeholder: it exists only so that a
//     deeper satellite can be reached.
//
// Hop chains from a leader to its satellites:
//
//	(1,0,0) east            (0,1,1) north → sky
//	(0,1,0) north           (1,0,1) east  → sky
//	(0,0,1) sky             (1,1,0) north → east
//	                        (1,1,1) north → east → sky
//
// Why:
//
//   - Sparse voxel grids and lattice simulations touch a tiny fraction of an
//     effectively infinite space; a dense array is wasteful.
//   - One index entry serves up to eight addressable corners, and walking
//     along +x/+y/+z inside a cube follows links instead of hashing.
//
// Complexity:
//
//   - Get, GetMut, Set: O(1) — one map lookup plus at most three hops.
//   - Find, FindIf: O(N) over every arena slot, placeholders included.
//   - FreePos: O(1) per freed node (at most eight per cube).
//   - FreeAll: O(L) over leader entries plus the freed cubes.
//   - Iterator.Next: O(1); forward directions skip the map lookup while the
//     next cell is linked from the current one.
//
// Errors:
//
//   - ErrNegativeCapacity: Reserve was given a negative capacity.
//
// Absence is never an error: every "nothing stored here" case is a false
// second return value. A hop-table miss means leader arithmetic is broken and
// panics.
//
// Concurrency:
//
//   - GraphMat is single-threaded. GetMut results and live iterators borrow
//     the whole store; do not mutate the store while either is in use.
//   - Locked wraps a GraphMat in one sync.RWMutex for shared use.
//
// Removal:
//
//   - FreePos and FreeAll remove whole cubes: the leader and every satellite
//     reachable from it. Satellites are never left behind without a leader.
package graphmat
