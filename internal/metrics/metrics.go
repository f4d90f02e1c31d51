package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Generation metrics

	GenerationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sop",
		Name:      "generations_total",
		Help:      "Total SOP generation attempts, by outcome.",
	}, []string{"outcome"})

	GenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sop",
		Name:      "generation_duration_seconds",
		Help:      "Duration of provider generation calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
	})

	// Mail metrics

	EmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sop",
		Name:      "emails_total",
		Help:      "Total emails attempted, by kind and outcome.",
	}, []string{"kind", "outcome"})

	// HTTP metrics

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sop",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			GenerationsTotal,
			GenerationDuration,
			EmailsTotal,
			HTTPRequestsTotal,
		)
	})
}
