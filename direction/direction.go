// Package direction enumerates the ten fixed lattice directions a graphmat
// iterator can step in: four cardinal and four diagonal directions in the
// horizontal (x,y) plane, plus Up and Down along z.
//
//	NorthWest  North  NorthEast        Up   (+z)
//	     West    ·    East             Down (-z)
//	SouthWest  South  SouthEast
package direction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphmat/coord"
)

// ErrUnknownDirection indicates a name that matches none of the ten directions.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Direction is one of the ten named unit steps.
type Direction uint8

const (
	North Direction = iota
	East
	West
	South

	NorthWest
	NorthEast
	SouthWest
	SouthEast

	Up
	Down

	count
)

var deltas = [count]coord.Coord{
	North: {X: 0, Y: 1, Z: 0},
	East:  {X: 1, Y: 0, Z: 0},
	West:  {X: -1, Y: 0, Z: 0},
	South: {X: 0, Y: -1, Z: 0},

	NorthWest: {X: -1, Y: 1, Z: 0},
	NorthEast: {X: 1, Y: 1, Z: 0},
	SouthWest: {X: -1, Y: -1, Z: 0},
	SouthEast: {X: 1, Y: -1, Z: 0},

	Up:   {X: 0, Y: 0, Z: 1},
	Down: {X: 0, Y: 0, Z: -1},
}

var names = [count]string{
	North:     "north",
	East:      "east",
	West:      "west",
	South:     "south",
	NorthWest: "north-west",
	NorthEast: "north-east",
	SouthWest: "south-west",
	SouthEast: "south-east",
	Up:        "up",
	Down:      "down",
}

// Valid reports whether d is one of the ten defined directions.
func (d Direction) Valid() bool { return d < count }

// Delta returns the unit vector for d. It panics on an invalid Direction.
func (d Direction) Delta() coord.Coord {
	if !d.Valid() {
		panic(fmt.Sprintf("direction: invalid direction %d", uint8(d)))
	}
	return deltas[d]
}

// Forward reports whether d points along one of a node's own forward links
// (North = +y, East = +x, Up = +z).
func (d Direction) Forward() bool {
	return d == North || d == East || d == Up
}

// Opposite returns the direction with the negated delta.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("direction: invalid direction %d", uint8(d)))
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return names[d]
}

// All returns the ten directions in declaration order.
func All() []Direction {
	out := make([]Direction, 0, count)
	for d := Direction(0); d < count; d++ {
		out = append(out, d)
	}
	return out
}

// Parse maps a name to its Direction. Matching ignores case, and "_" or ""
// may stand in for the hyphen of diagonal names ("northwest", "north_west").
func Parse(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for d, n := range names {
		if strings.ReplaceAll(n, "-", "") == key {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(names[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
