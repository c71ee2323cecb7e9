package graphmat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation label values of graphmat_operations_total.
const (
	opGet     = "get"
	opGetMut  = "get_mut"
	opSet     = "set"
	opFind    = "find"
	opFreePos = "free_pos"
	opFreeAll = "free_all"
	opReserve = "reserve"
)

// Metrics holds the prometheus collectors of one store. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ops          *prometheus.CounterVec
	nodes        prometheus.Gauge
	leaders      prometheus.Gauge
	placeholders prometheus.Counter
	freed        prometheus.Counter
}

// NewMetrics creates the collectors, labels them with store and registers
// them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, store string) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"store": store}
	return &Metrics{
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "graphmat_operations_total",
			Help:        "Store operations by kind",
			ConstLabels: labels,
		}, []string{"op"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name:        "graphmat_nodes",
			Help:        "Live arena nodes, placeholders included",
			ConstLabels: labels,
		}),
		leaders: f.NewGauge(prometheus.GaugeOpts{
			Name:        "graphmat_leaders",
			Help:        "Leader entries in the coordinate index",
			ConstLabels: labels,
		}),
		placeholders: f.NewCounter(prometheus.CounterOpts{
			Name:        "graphmat_placeholders_created_total",
			Help:        "Payload-less nodes allocated to thread a path to a satellite",
			ConstLabels: labels,
		}),
		freed: f.NewCounter(prometheus.CounterOpts{
			Name:        "graphmat_nodes_freed_total",
			Help:        "Nodes removed by FreePos and FreeAll",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) op(name string) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(name).Inc()
}

func (m *Metrics) size(nodes, leaders int) {
	if m == nil {
		return
	}
	m.nodes.Set(float64(nodes))
	m.leaders.Set(float64(leaders))
}

func (m *Metrics) placeholder() {
	if m == nil {
		return
	}
	m.placeholders.Inc()
}

func (m *Metrics) freedNodes(n int) {
	if m == nil {
		return
	}
	m.freed.Add(float64(n))
}
