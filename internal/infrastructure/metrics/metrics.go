// Package metrics collects and exposes Prometheus metrics for Rentdesk Core.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers HTTP and domain metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    prometheus.Histogram
	authFailures    *prometheus.CounterVec
	complaintsFiled prometheus.Counter
	accountsDeleted prometheus.Counter
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentdesk_http_requests_total",
			Help: "HTTP requests by method, route pattern, and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rentdesk_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentdesk_auth_failures_total",
			Help: "Authentication failures by operation (register, login, resolve).",
		}, []string{"operation"}),
		complaintsFiled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentdesk_complaints_filed_total",
			Help: "Complaints successfully filed.",
		}),
		accountsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentdesk_accounts_deleted_total",
			Help: "Accounts deleted by their owner.",
		}),
	}

	registry.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.authFailures,
		c.complaintsFiled,
		c.accountsDeleted,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	c.httpDuration.Observe(duration.Seconds())
}

// RecordAuthFailure records a failed register/login/resolve attempt.
func (c *Collector) RecordAuthFailure(operation string) {
	c.authFailures.WithLabelValues(operation).Inc()
}

// RecordComplaintFiled records a successfully created complaint.
func (c *Collector) RecordComplaintFiled() {
	c.complaintsFiled.Inc()
}

// RecordAccountDeleted records a completed account deletion.
func (c *Collector) RecordAccountDeleted() {
	c.accountsDeleted.Inc()
}

// Handler returns the Prometheus exposition handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// statusLabel buckets a status code into its class ("2xx", "4xx", ...) to
// keep label cardinality low.
func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
