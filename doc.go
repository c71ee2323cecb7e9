// Package graphmat is the root of a sparse 3D coordinate store whose cells
// can be walked neighbour to neighbour without a hash lookup per step.
//
// Under the hood, everything is organized under these subpackages:
//
//	coord/     — Coord{X,Y,Z} and the 2×2×2 leader arithmetic
//	direction/ — the ten stepping directions and their deltas
//	arena/     — generational slot allocator backing every node
//	graphmat/  — the store: Get/Set/Find/Free, iterators, locking, metrics
//	scene/     — YAML/TOML scene files and scripted walks
//	cmd/graphmat — command-line playground
//
// Quick example, a cube led by (4,4,4):
//
//	      (4,5,5)───(5,5,5)
//	      /│          /│
//	(4,4,5)───(5,4,5)  │
//	   │  (4,5,4)───│(5,5,4)
//	   │ /          │ /
//	(4,4,4)───(5,4,4)
//
// Only (4,4,4) is a key of the coordinate index; the seven other corners are
// reached over north (+y), east (+x) and sky (+z) links.
//
//	go get github.com/katalvlaran/graphmat
package graphmat
