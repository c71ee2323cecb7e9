package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
	"github.com/katalvlaran/graphmat/graphmat"
)

func newFillCmd(a *app) *cobra.Command {
	var (
		size    int
		reserve bool
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill a size³ block, then verify it row by row with east iterators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			n := int64(size)
			var opts []graphmat.Option
			if reserve {
				opts = append(opts, graphmat.WithCapacity(size*size*size))
			}
			g := a.store("fill", opts...)

			start := time.Now()
			for x := int64(0); x < n; x++ {
				for y := int64(0); y < n; y++ {
					for z := int64(0); z < n; z++ {
						g.Set(coord.New(x, y, z), x+y+z)
					}
				}
			}
			filled := time.Since(start)

			start = time.Now()
			var cells int
			for y := int64(0); y < n; y++ {
				for z := int64(0); z < n; z++ {
					for c, v := range g.Iter(direction.East, coord.New(0, y, z)).All() {
						if v != c.X+c.Y+c.Z {
							return fmt.Errorf("value at %v is %d, want %d", c, v, c.X+c.Y+c.Z)
						}
						cells++
					}
				}
			}
			walked := time.Since(start)
			if want := size * size * size; cells != want {
				return fmt.Errorf("walked %d cells, want %d", cells, want)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "filled %d cells in %v, walked them in %v (%d nodes, %d cubes)\n",
				cells, filled, walked, g.Len(), g.Leaders())
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 32, "edge length of the block")
	cmd.Flags().BoolVar(&reserve, "reserve", false, "presize the store before filling")
	return cmd
}
