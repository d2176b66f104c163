// Package metrics holds the prometheus collectors for the service:
// inbound HTTP traffic, upstream salon-API calls and status-change outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all collectors, registered on the default registry
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	statusChangesTotal *prometheus.CounterVec
}

// New creates and registers the service collectors
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "salonapi_requests_total",
			Help:        "Total number of requests issued to the salon API",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "salonapi_request_duration_seconds",
			Help:        "Salon API request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		statusChangesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_changes_total",
			Help:        "Optimistic status changes by final outcome",
			ConstLabels: constLabels,
		}, []string{"target", "outcome"}),
	}
}

// RecordHTTPRequest records one handled inbound request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one call to the salon API
func (m *Metrics) RecordUpstreamRequest(operation, outcome string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStatusChange records the outcome of an optimistic status change:
// "applied" when the upstream confirmed it, "rolled_back" on failure
func (m *Metrics) RecordStatusChange(target, outcome string) {
	m.statusChangesTotal.WithLabelValues(target, outcome).Inc()
}
