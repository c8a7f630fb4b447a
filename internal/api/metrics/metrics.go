// Package metrics defines all custom Prometheus metrics for the user
// registration API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry on import via promauto; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registration"

// UsersRegisteredTotal counts successfully created user records.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users successfully registered.",
	},
)

// RegistrationErrorsTotal counts failed registration attempts.
// Label:
//   - reason: "validation", "conflict", "duplicate_key", "unavailable", or "internal"
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Total number of failed registration attempts, by reason.",
	},
	[]string{"reason"},
)

// ListRequestsTotal counts listing reads.
// Label:
//   - result: "ok" or "error"
var ListRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_requests_total",
		Help:      "Total number of user listing requests, by result.",
	},
	[]string{"result"},
)

// RegistrationDuration measures how long a registration attempt takes
// end-to-end, from bind to persistence.
// Label:
//   - outcome: "created" or "rejected"
var RegistrationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "duration_seconds",
		Help:      "Duration of registration requests from bind to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
