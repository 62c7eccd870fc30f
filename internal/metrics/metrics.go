package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for index evaluations.
type Metrics struct {
	Evaluations      *prometheus.CounterVec // labels: classification
	EvaluationErrors *prometheus.CounterVec // labels: reason
	IndexValue       prometheus.Histogram
	BatchSize        prometheus.Histogram
	EventsPublished  *prometheus.CounterVec // labels: kind={computed,failed,weights}
}

// New creates and registers all metrics with the default Prometheus registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.Evaluations,
		m.EvaluationErrors,
		m.IndexValue,
		m.BatchSize,
		m.EventsPublished,
	)
	return m
}

// NewForTesting creates unregistered collectors so tests can build as many
// instances as they like.
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wqi",
			Name:      "evaluations_total",
			Help:      "Completed index evaluations by quality class.",
		}, []string{"classification"}),
		EvaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wqi",
			Name:      "evaluation_errors_total",
			Help:      "Rejected evaluations by reason.",
		}, []string{"reason"}),
		IndexValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wqi",
			Name:      "index_value",
			Help:      "Distribution of computed index values.",
			Buckets:   []float64{19, 36, 51, 79, 100},
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wqi",
			Name:      "batch_size",
			Help:      "Number of samples per batch request.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wqi",
			Name:      "events_published_total",
			Help:      "Events published to NATS by kind.",
		}, []string{"kind"}),
	}
}
