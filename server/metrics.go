package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	queries  *prometheus.CounterVec
	missing  prometheus.Counter
	shared   prometheus.Counter
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		// Labels: algorithm name, found "true"/"false".
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citysearch_route_queries_total",
			Help: "Route searches by algorithm and outcome",
		}, []string{"algorithm", "found"}),
		missing: f.NewCounter(prometheus.CounterOpts{
			Name: "citysearch_unresolved_queries_total",
			Help: "Route queries naming an unknown city",
		}),
		shared: f.NewCounter(prometheus.CounterOpts{
			Name: "citysearch_shared_queries_total",
			Help: "Route queries answered by an identical in-flight query",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "citysearch_route_duration_seconds",
			Help:    "Route query duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}
