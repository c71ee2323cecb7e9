package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
	"github.com/katalvlaran/graphmat/scene"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		scenePath string
		from      string
		dir       string
		name      string
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "walk --scene FILE (--from X,Y,Z --dir DIR | --name WALK)",
		Short: "Walk a scene in one direction, or replay a named walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scene.Load(scenePath)
			if err != nil {
				return err
			}
			g := a.store("walk")
			s.Apply(g)
			out := cmd.OutOrStdout()

			if name != "" {
				w, err := s.Walk(name)
				if err != nil {
					return err
				}
				for _, st := range scene.Run(g, w) {
					fmt.Fprintf(out, "%v %d\n", st.At, st.Value)
				}
				return nil
			}

			start, err := coord.Parse(from)
			if err != nil {
				return err
			}
			d, err := direction.Parse(dir)
			if err != nil {
				return err
			}
			n := 0
			for c, v := range g.Iter(d, start).All() {
				if limit > 0 && n == limit {
					break
				}
				fmt.Fprintf(out, "%v %d\n", c, v)
				n++
			}
			a.log.Debug("walk finished", "from", start, "direction", d, "cells", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&scenePath, "scene", "", "scene file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&from, "from", "0,0,0", "start coordinate")
	cmd.Flags().StringVar(&dir, "dir", "north", "direction: north, east, west, south, north-west, north-east, south-west, south-east, up, down")
	cmd.Flags().StringVar(&name, "name", "", "replay the named walk from the scene instead")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many cells (0 = until the first empty cell)")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}
