// Package coord defines the signed 3D lattice coordinate used as the key of a
// graphmat store, together with the leader arithmetic that groups space into
// 2×2×2 cubes.
//
// What:
//
//   - Coord is a plain value type {X, Y, Z int64}; it is comparable and can be
//     used directly as a map key.
//   - Leader(c) is the all-even corner of the cube containing c. Each axis is
//     floored toward negative infinity, so Leader({-1,0,0}) = {-2,0,0}.
//   - Offset(c) = c - Leader(c) has every component in {0, 1}.
//
// Example cube with leader (4,4,4):
//
//	      (4,5,5)───(5,5,5)
//	      /│          /│
//	(4,4,5)───(5,4,5)  │
//	   │  (4,5,4)───│(5,5,4)
//	   │ /          │ /
//	(4,4,4)───(5,4,4)
//
// Complexity: every function in this package is O(1).
package coord
