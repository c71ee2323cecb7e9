package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/graphmat"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	metrics  bool

	log *slog.Logger
	reg *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "graphmat",
		Short:         "Sparse 3D coordinate store playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			a.reg = prometheus.NewRegistry()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.metrics {
				return nil
			}
			return a.dumpMetrics(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print store metrics after the command")

	root.AddCommand(
		newDemoCmd(a),
		newGetCmd(a),
		newWalkCmd(a),
		newFillCmd(a),
	)
	return root
}

// store builds a store wired to the app's logger and metric registry.
func (a *app) store(name string, opts ...graphmat.Option) *graphmat.GraphMat[int64] {
	opts = append(opts, graphmat.WithLogger(a.log.With("store", name)))
	if a.metrics {
		opts = append(opts, graphmat.WithMetrics(graphmat.NewMetrics(a.reg, name)))
	}
	return graphmat.New[int64](opts...)
}

// dumpMetrics prints every gathered sample as "name{labels} value".
func (a *app) dumpMetrics(w io.Writer) error {
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), v))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
