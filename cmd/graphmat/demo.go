package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
	"github.com/katalvlaran/graphmat/graphmat"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Fill two columns and walk them straight and as a staircase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			g := a.store("demo")

			g.Set(coord.New(2, 3, 4), 150)
			_, ok := g.Get(coord.New(1, 2, 3))
			v, _ := g.Get(coord.New(2, 3, 4))
			fmt.Fprintf(out, "(1,2,3) set=%t, (2,3,4) = %d\n", ok, v)

			column := []struct {
				at coord.Coord
				v  int64
			}{
				{coord.New(4, 3, 6), 40}, {coord.New(4, 2, 6), 39}, {coord.New(4, 1, 6), 38}, {coord.New(4, 0, 6), 37},
				{coord.New(4, 3, 5), 13}, {coord.New(4, 2, 5), 21}, {coord.New(4, 1, 5), 22}, {coord.New(4, 0, 5), 23},
			}
			for _, c := range column {
				g.Set(c.at, c.v)
			}

			for c, v := range g.Iter(direction.South, coord.New(4, 3, 6)).All() {
				fmt.Fprintf(out, "south %v => %d\n", c, v)
			}

			it := g.IterAnyDirection(coord.New(4, 3, 6), direction.Down)
			for c, v := range it.All() {
				fmt.Fprintf(out, "stairs %v => %d\n", c, v)
				it.SetDirection(direction.South)
			}

			g.FreePos(coord.New(2, 2, 4))
			n := g.FreeAll(func(v int64) bool { return v == 0 })
			fmt.Fprintf(out, "freed %d more cubes, %d nodes left in %d cubes\n", n, g.Len(), g.Leaders())

			if c, ok := graphmat.Find(g, 22); ok {
				fmt.Fprintf(out, "22 found at %v\n", c)
			}
			return nil
		},
	}
}
