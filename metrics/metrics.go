// Package metrics holds the Prometheus collectors exported by the API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookrec"

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	ratingsSubmitted prometheus.Counter
	ratingConflicts  prometheus.Counter
	rankingDuration  prometheus.Histogram
	rankingFailures  prometheus.Counter
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ratingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_submitted_total",
			Help:      "Ratings accepted by the rating service.",
		}),
		ratingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_upsert_conflicts_total",
			Help:      "Rating inserts that lost the uniqueness race and were retried as updates.",
		}),
		rankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_query_duration_seconds",
			Help:      "Latency of the top-N ranking query.",
			Buckets:   prometheus.DefBuckets,
		}),
		rankingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_query_failures_total",
			Help:      "Ranking queries that failed in storage.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ratingsSubmitted,
		m.ratingConflicts,
		m.rankingDuration,
		m.rankingFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RatingSubmitted() {
	if m == nil {
		return
	}
	m.ratingsSubmitted.Inc()
}

func (m *Metrics) RatingConflict() {
	if m == nil {
		return
	}
	m.ratingConflicts.Inc()
}

func (m *Metrics) ObserveRanking(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.rankingDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.rankingFailures.Inc()
	}
}
