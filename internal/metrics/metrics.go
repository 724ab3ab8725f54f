// Package metrics holds the Prometheus instruments exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBOperationDuration *prometheus.HistogramVec
)

// Init registers the instruments under the given name prefix. Call once at
// startup before the router begins serving.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)
}

// TrackDBOperation returns a function that records the duration of one
// database operation. Use as: defer TrackDBOperation("query", table)(time.Now()).
func TrackDBOperation(operation, table string) func(time.Time) {
	return func(start time.Time) {
		DBOperationDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
