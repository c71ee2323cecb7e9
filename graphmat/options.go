package graphmat

import (
	"io"
	"log/slog"
)

type options struct {
	capacity int
	logger   *slog.Logger
	metrics  *Metrics
}

// Option configures a GraphMat at construction time.
type Option func(o *options)

// WithCapacity presizes the store for roughly n addressable cells, as if
// Reserve(n) had been called on the empty store.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger routes debug records (cube frees, reserve clamps) to l.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics reports operation counts and sizes to m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
