// Package metrics provides Prometheus metrics for the user API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "museum_user_api"

var (
	// RequestsTotal counts handled HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RejectionsTotal counts collaborator rejections by kind.
	RejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Total number of rejected operations by error kind",
		},
		[]string{"operation", "kind"},
	)

	// AuthFailuresTotal counts requests refused by the authentication gate.
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Total number of requests refused by the authentication gate",
		},
	)

	// StoreConnectionStatus tracks the database connection status.
	StoreConnectionStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_connection_status",
			Help:      "Store connection status (1 = connected, 0 = disconnected)",
		},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, route, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordRejection records a collaborator rejection.
func RecordRejection(operation, kind string) {
	RejectionsTotal.WithLabelValues(operation, kind).Inc()
}

// RecordAuthFailure records a request refused by the gate.
func RecordAuthFailure() {
	AuthFailuresTotal.Inc()
}

// SetStoreConnected sets the store connection status to connected.
func SetStoreConnected() {
	StoreConnectionStatus.Set(1)
}

// SetStoreDisconnected sets the store connection status to disconnected.
func SetStoreDisconnected() {
	StoreConnectionStatus.Set(0)
}
