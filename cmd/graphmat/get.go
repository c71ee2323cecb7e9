package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/scene"
)

func newGetCmd(a *app) *cobra.Command {
	var scenePath string
	cmd := &cobra.Command{
		Use:   "get --scene FILE X,Y,Z...",
		Short: "Print the values stored at the given coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(scenePath)
			if err != nil {
				return err
			}
			g := a.store("get")
			s.Apply(g)
			a.log.Info("scene loaded", "path", scenePath, "cells", len(s.Cells), "nodes", g.Len())

			for _, arg := range args {
				c, err := coord.Parse(arg)
				if err != nil {
					return err
				}
				if v, ok := g.Get(c); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%v %d\n", c, v)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%v empty\n", c)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenePath, "scene", "", "scene file (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}
