// Package metrics defines the Prometheus metrics exported by habilitations.
// Every metric registers with the default registry when the package loads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "habilitations"

// StorageOperationsTotal counts statements sent to the database.
// Labels:
//   - op: "select" or "update"
//   - result: "ok" or "error"
var StorageOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_operations_total",
		Help:      "Total number of statements executed against the database.",
	},
	[]string{"op", "result"},
)

// StorageOperationDuration measures statement latency.
var StorageOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "storage_operation_duration_seconds",
		Help:      "Duration of statements executed against the database.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// AuthenticationsTotal counts administrator authentication checks.
// Label:
//   - result: "granted", "denied" or "error"
var AuthenticationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authentications_total",
		Help:      "Total number of administrator authentication checks.",
	},
	[]string{"result"},
)

// HTTPRequestsTotal counts API requests by route template and status code.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served by the admin API.",
	},
	[]string{"method", "route", "status"},
)
