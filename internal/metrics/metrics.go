package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pavement"

// Metrics holds the calculator's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Computations  *prometheus.CounterVec // labels: source, tier
	Rejected      *prometheus.CounterVec // labels: source, reason={decode,range,domain}
	ImportSkipped prometheus.Counter
	SNTotal       prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sn_computations_total",
			Help:      "Structural number computations by source and traffic tier.",
		}, []string{"source", "tier"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sn_rejected_total",
			Help:      "Inputs rejected before producing a result.",
		}, []string{"source", "reason"}),
		ImportSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_skipped_total",
			Help:      "Workbook rows skipped during import.",
		}),
		SNTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sn_total",
			Help:      "Distribution of computed total structural numbers.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}),
	}
}

// NewMetrics creates the collectors and registers them with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Computations, m.Rejected, m.ImportSkipped, m.SNTotal)
	return m
}

// NewMetricsForTesting registers on a fresh registry so tests can build
// as many as they like.
func NewMetricsForTesting() (*Metrics, *prometheus.Registry) {
	m := newMetrics()
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Computations, m.Rejected, m.ImportSkipped, m.SNTotal)
	return m, reg
}

func (m *Metrics) ObserveComputation(source, tier string, total float64) {
	if m == nil {
		return
	}
	m.Computations.WithLabelValues(source, tier).Inc()
	m.SNTotal.Observe(total)
}

func (m *Metrics) ObserveRejected(source, reason string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(source, reason).Inc()
}

func (m *Metrics) ObserveImportSkipped() {
	if m == nil {
		return
	}
	m.ImportSkipped.Inc()
}
