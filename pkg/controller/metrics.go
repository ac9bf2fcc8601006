package controller

import (
	"net/http"
	"strconv"
	"time"

	"brandintel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics holds the prometheus collectors for HTTP request
// instrumentation. Collectors are registered once at construction.
type RequestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers the HTTP request collectors on the
// given registerer.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	m := &RequestMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method and path.",
			Buckets: metrics.DefaultBuckets,
		}, []string{"method", "path"}),
	}
	reg.MustRegister(m.requests, m.duration)

	return m
}

// Middleware instruments the downstream handler with request count and
// latency metrics. The path label uses the raw URL path; callers should mount
// it per-route when high-cardinality paths are a concern.
func (m *RequestMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.requests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
