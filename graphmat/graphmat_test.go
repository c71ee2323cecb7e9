package graphmat_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphmat/arena"
	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/graphmat"
)

type GraphMatSuite struct {
	suite.Suite
	g *graphmat.GraphMat[int]
}

func (s *GraphMatSuite) SetupTest() {
	s.g = graphmat.New[int]()
}

// TestReadAfterWrite covers every corner of a cube, on both sides of zero.
func (s *GraphMatSuite) TestReadAfterWrite() {
	for _, base := range []coord.Coord{coord.New(0, 0, 0), coord.New(-2, -2, -2), coord.New(4, -6, 10)} {
		for off := int64(0); off < 8; off++ {
			c := base.Add(coord.New(off&1, off>>1&1, off>>2&1))
			want := int(c.X*100 + c.Y*10 + c.Z)
			s.g.Set(c, want)
			got, ok := s.g.Get(c)
			s.Require().True(ok, "get %v", c)
			s.Equal(want, got, "get %v", c)
		}
	}
}

// TestUntouchedRead verifies unset cells are empty, including placeholders.
func (s *GraphMatSuite) TestUntouchedRead() {
	_, ok := s.g.Get(coord.New(1, 2, 3))
	s.False(ok)

	s.g.Set(coord.New(1, 1, 1), 9)
	for _, c := range []coord.Coord{
		coord.New(0, 0, 0), // placeholder leader
		coord.New(0, 1, 0), // placeholder north
		coord.New(1, 1, 0), // placeholder north-east
		coord.New(1, 0, 0), // never created
		coord.New(0, 0, 1),
	} {
		_, ok := s.g.Get(c)
		s.False(ok, "get %v", c)
		s.False(s.g.Contains(c), "contains %v", c)
		p, ok := s.g.GetMut(c)
		s.False(ok)
		s.Nil(p)
	}
	s.Equal(3, s.g.Placeholders())
}

// TestSetDoesNotClobberLeader verifies a satellite write keeps the leader value.
func (s *GraphMatSuite) TestSetDoesNotClobberLeader() {
	s.g.Set(coord.New(2, 2, 2), 1)
	s.g.Set(coord.New(3, 3, 3), 2)
	v, ok := s.g.Get(coord.New(2, 2, 2))
	s.Require().True(ok)
	s.Equal(1, v)
	s.Equal(1, s.g.Leaders())
}

// TestOverwriteIntermediate verifies deeper corners survive when a shared
// intermediate corner is overwritten.
func (s *GraphMatSuite) TestOverwriteIntermediate() {
	s.g.Set(coord.New(1, 1, 1), 7)
	s.g.Set(coord.New(0, 1, 1), 8)
	s.Equal(5, s.g.Len())

	s.g.Set(coord.New(0, 1, 0), 5)
	s.g.Set(coord.New(1, 1, 0), 6)
	s.Equal(5, s.g.Len(), "replacement must not leak slots")
	s.Equal(1, s.g.Placeholders())

	for c, want := range map[coord.Coord]int{
		coord.New(1, 1, 1): 7,
		coord.New(0, 1, 1): 8,
		coord.New(0, 1, 0): 5,
		coord.New(1, 1, 0): 6,
	} {
		got, ok := s.g.Get(c)
		s.Require().True(ok, "get %v", c)
		s.Equal(want, got, "get %v", c)
	}
}

// TestGetMut verifies in-place updates through the returned pointer.
func (s *GraphMatSuite) TestGetMut() {
	c := coord.New(-1, 3, 0)
	s.g.Set(c, 10)
	p, ok := s.g.GetMut(c)
	s.Require().True(ok)
	*p += 5
	v, _ := s.g.Get(c)
	s.Equal(15, v)
}

// TestCubeIsolation writes a block spanning many cubes and reads it back.
func (s *GraphMatSuite) TestCubeIsolation() {
	val := func(c coord.Coord) int { return int((c.X+10)*10000 + (c.Y+10)*100 + (c.Z + 10)) }
	for x := int64(-3); x <= 3; x++ {
		for y := int64(-3); y <= 3; y++ {
			for z := int64(-3); z <= 3; z++ {
				s.g.Set(coord.New(x, y, z), val(coord.New(x, y, z)))
			}
		}
	}
	for x := int64(-5); x <= 5; x++ {
		for y := int64(-5); y <= 5; y++ {
			for z := int64(-5); z <= 5; z++ {
				c := coord.New(x, y, z)
				got, ok := s.g.Get(c)
				inside := x >= -3 && x <= 3 && y >= -3 && y <= 3 && z >= -3 && z <= 3
				if !inside {
					s.False(ok, "get %v", c)
					continue
				}
				s.Require().True(ok, "get %v", c)
				s.Equal(val(c), got)
			}
		}
	}
}

// TestFreePos verifies a freed leader reads empty and takes its cube with it.
func (s *GraphMatSuite) TestFreePos() {
	s.g.Set(coord.New(2, 3, 4), 150)
	s.g.Set(coord.New(2, 2, 4), 1)
	s.g.Set(coord.New(3, 3, 5), 2)
	s.g.Set(coord.New(4, 4, 4), 3)

	s.False(s.g.FreePos(coord.New(3, 3, 5)), "non-leader is not an index key")
	s.True(s.g.FreePos(coord.New(2, 2, 4)))
	s.False(s.g.FreePos(coord.New(2, 2, 4)), "second free is a no-op")

	for _, c := range []coord.Coord{coord.New(2, 2, 4), coord.New(2, 3, 4), coord.New(3, 3, 5)} {
		_, ok := s.g.Get(c)
		s.False(ok, "get %v", c)
	}
	_, ok := graphmat.Find(s.g, 150)
	s.False(ok, "freed satellites must not be findable")

	v, ok := s.g.Get(coord.New(4, 4, 4))
	s.True(ok)
	s.Equal(3, v)
	s.Equal(1, s.g.Len())
}

// TestFreePos_PlaceholderLeader verifies cubes with an empty leader can be freed.
func (s *GraphMatSuite) TestFreePos_PlaceholderLeader() {
	s.g.Set(coord.New(1, 0, 0), 4)
	s.True(s.g.FreePos(coord.New(0, 0, 0)))
	s.Equal(0, s.g.Len())
	s.Equal(0, s.g.Leaders())
}

// TestFreeAll verifies only leader payloads are tested.
func (s *GraphMatSuite) TestFreeAll() {
	s.g.Set(coord.New(0, 0, 0), 0)
	s.g.Set(coord.New(1, 0, 0), 0)
	s.g.Set(coord.New(2, 0, 0), 5)
	s.g.Set(coord.New(3, 0, 0), 0)
	s.g.Set(coord.New(5, 1, 1), 0) // leader (4,0,0) is a placeholder

	n := s.g.FreeAll(func(v int) bool { return v == 0 })
	s.Equal(1, n)

	_, ok := s.g.Get(coord.New(0, 0, 0))
	s.False(ok)
	_, ok = s.g.Get(coord.New(1, 0, 0))
	s.False(ok)
	for _, c := range []coord.Coord{coord.New(2, 0, 0), coord.New(3, 0, 0), coord.New(5, 1, 1)} {
		_, ok := s.g.Get(c)
		s.True(ok, "get %v", c)
	}
	s.Equal(0, s.g.FreeAll(func(int) bool { return false }))
}

// TestFind verifies hits, misses and that placeholders never match.
func (s *GraphMatSuite) TestFind() {
	s.g.Set(coord.New(1, 1, 1), 7)
	s.g.Set(coord.New(-3, 4, 9), 42)

	c, ok := graphmat.Find(s.g, 42)
	s.Require().True(ok)
	v, _ := s.g.Get(c)
	s.Equal(42, v)

	_, ok = graphmat.Find(s.g, 0)
	s.False(ok, "placeholders hold the zero value but are not matched")
	_, ok = graphmat.Find(s.g, 1000)
	s.False(ok)

	c, ok = s.g.FindIf(func(int) bool { return true })
	s.Require().True(ok)
	s.True(s.g.Contains(c), "FindIf returned placeholder %v", c)

	c, ok = s.g.FindIf(func(v int) bool { return v < 10 })
	s.Require().True(ok)
	s.Equal(coord.New(1, 1, 1), c)
}

// TestReserve covers clamping, rejection and that capacity is only a hint.
func (s *GraphMatSuite) TestReserve() {
	err := s.g.Reserve(-1)
	s.ErrorIs(err, graphmat.ErrNegativeCapacity)

	s.Require().NoError(s.g.Reserve(1000))
	for x := int64(0); x < 10; x++ {
		for y := int64(0); y < 10; y++ {
			for z := int64(0); z < 10; z++ {
				s.g.Set(coord.New(x, y, z), int(x+y+z))
			}
		}
	}
	s.Require().NoError(s.g.Reserve(0), "capacity below size clamps")
	s.Require().NoError(s.g.Reserve(s.g.Len()))
	for x := int64(0); x < 10; x++ {
		for y := int64(0); y < 10; y++ {
			for z := int64(0); z < 10; z++ {
				v, ok := s.g.Get(coord.New(x, y, z))
				s.Require().True(ok)
				s.Equal(int(x+y+z), v)
			}
		}
	}
}

// TestReserve_Oversized verifies an unaddressable capacity is an error, not a
// panic, and leaves the store usable.
func (s *GraphMatSuite) TestReserve_Oversized() {
	s.g.Set(coord.New(1, 1, 1), 7)
	before := s.g.Len()

	err := s.g.Reserve(math.MaxInt)
	s.Require().ErrorIs(err, arena.ErrFull)
	s.Equal(before, s.g.Len())

	v, ok := s.g.Get(coord.New(1, 1, 1))
	s.Require().True(ok)
	s.Equal(7, v)
	s.g.Set(coord.New(2, 2, 2), 8)
	s.True(s.g.Contains(coord.New(2, 2, 2)))
}

// TestClear verifies the store is empty and reusable.
func (s *GraphMatSuite) TestClear() {
	s.g.Set(coord.New(1, 1, 1), 1)
	s.g.Clear()
	s.Equal(0, s.g.Len())
	s.Equal(0, s.g.Leaders())
	_, ok := s.g.Get(coord.New(1, 1, 1))
	s.False(ok)
	s.g.Set(coord.New(1, 1, 1), 2)
	v, _ := s.g.Get(coord.New(1, 1, 1))
	s.Equal(2, v)
}

func TestGraphMatSuite(t *testing.T) {
	suite.Run(t, new(GraphMatSuite))
}

// TestModel replays random writes and frees against a plain map.
func TestModel(t *testing.T) {
	g := graphmat.New[int]()
	model := make(map[coord.Coord]int)
	rng := rand.New(rand.NewSource(7))
	pick := func() coord.Coord {
		return coord.New(rng.Int63n(13)-6, rng.Int63n(13)-6, rng.Int63n(13)-6)
	}

	for i := 0; i < 20000; i++ {
		switch op := rng.Intn(10); {
		case op < 8:
			c := pick()
			g.Set(c, i)
			model[c] = i
		default:
			c := pick().Leader()
			if g.FreePos(c) {
				for k := range model {
					if k.Leader() == c {
						delete(model, k)
					}
				}
			}
		}
	}

	for x := int64(-7); x <= 7; x++ {
		for y := int64(-7); y <= 7; y++ {
			for z := int64(-7); z <= 7; z++ {
				c := coord.New(x, y, z)
				want, inModel := model[c]
				got, ok := g.Get(c)
				require.Equal(t, inModel, ok, "presence at %v", c)
				if ok {
					require.Equal(t, want, got, "value at %v", c)
				}
			}
		}
	}
}

// TestWithLogger verifies frees are logged at debug level.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := graphmat.New[int](graphmat.WithLogger(log), graphmat.WithCapacity(64))

	g.Set(coord.New(1, 1, 1), 1)
	require.True(t, g.FreePos(coord.New(0, 0, 0)))
	assert.Contains(t, buf.String(), "graphmat: freed cube")
	assert.Contains(t, buf.String(), "nodes=4")
}
