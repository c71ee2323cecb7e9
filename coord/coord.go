package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCoord indicates a textual coordinate could not be parsed.
var ErrBadCoord = errors.New("coord: expected three comma-separated integers")

// Coord is a point on the signed integer lattice.
type Coord struct {
	X, Y, Z int64
}

// New is shorthand for Coord{X: x, Y: y, Z: z}.
func New(x, y, z int64) Coord { return Coord{X: x, Y: y, Z: z} }

// Add returns c + d, component-wise.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// Sub returns c - d, component-wise.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y, Z: c.Z - d.Z}
}

// Leader returns the all-even corner of the 2×2×2 cube containing c.
//
// Clearing the low bit of a two's complement integer floors it to the next
// even value toward negative infinity, which is exactly "c if even, c-1 if odd"
// for negative inputs too.
func (c Coord) Leader() Coord {
	return Coord{X: c.X &^ 1, Y: c.Y &^ 1, Z: c.Z &^ 1}
}

// IsLeader reports whether c is the leader of its own cube.
func (c Coord) IsLeader() bool {
	return (c.X|c.Y|c.Z)&1 == 0
}

// Offset returns c - Leader(c); each component is 0 or 1.
func (c Coord) Offset() Coord {
	return Coord{X: c.X & 1, Y: c.Y & 1, Z: c.Z & 1}
}

// String renders c as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Array returns c as [x, y, z].
func (c Coord) Array() [3]int64 { return [3]int64{c.X, c.Y, c.Z} }

// FromArray is the inverse of Array.
func FromArray(a [3]int64) Coord { return Coord{X: a[0], Y: a[1], Z: a[2]} }

// Parse reads "x,y,z", optionally wrapped in parentheses and with spaces
// around the components.
func Parse(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	var v [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, s, err)
		}
		v[i] = n
	}
	return FromArray(v), nil
}
