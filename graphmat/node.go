package graphmat

import (
	"fmt"

	"github.com/katalvlaran/graphmat/arena"
	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
)

// link names one of a node's three forward neighbours.
type link uint8

const (
	linkNorth link = iota // +y
	linkEast              // +x
	linkSky               // +z

	linkCount
)

var linkDelta = [linkCount]coord.Coord{
	linkNorth: {Y: 1},
	linkEast:  {X: 1},
	linkSky:   {Z: 1},
}

// forwardLink maps each forward direction to the link pointing the same way.
// Only entries for which Direction.Forward reports true are meaningful.
var forwardLink = [...]link{
	direction.North: linkNorth,
	direction.East:  linkEast,
	direction.Up:    linkSky,
}

func (l link) String() string {
	switch l {
	case linkNorth:
		return "north"
	case linkEast:
		return "east"
	case linkSky:
		return "sky"
	}
	return fmt.Sprintf("link(%d)", uint8(l))
}

// node is one vertex of the store. A zero arena.Index in links means "no
// neighbour". Links always point one step along their axis: the target of
// links[l] sits at pos + linkDelta[l].
type node[T any] struct {
	value T
	has   bool
	pos   coord.Coord
	links [linkCount]arena.Index
}

func (n *node[T]) placeholder() bool { return !n.has }

// hops maps a cube offset, packed as x | y<<1 | z<<2, to the links to follow
// from the leader. Slot 0 is the leader itself and has no chain.
var hops = [8][]link{
	1: {linkEast},
	2: {linkNorth},
	3: {linkNorth, linkEast},
	4: {linkSky},
	5: {linkEast, linkSky},
	6: {linkNorth, linkSky},
	7: {linkNorth, linkEast, linkSky},
}

// hopChain returns the link chain leading from a leader to the corner at
// offset off. Anything but the seven non-zero {0,1}³ offsets is a bug in the
// caller's leader arithmetic and panics.
func hopChain(off coord.Coord) []link {
	if off.X&^1 != 0 || off.Y&^1 != 0 || off.Z&^1 != 0 {
		panic(fmt.Sprintf("graphmat: offset %v is not inside a 2x2x2 cube", off))
	}
	chain := hops[off.X|off.Y<<1|off.Z<<2]
	if len(chain) == 0 {
		panic(fmt.Sprintf("graphmat: offset %v has no hop chain", off))
	}
	return chain
}
