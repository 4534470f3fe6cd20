// Package metrics holds the Prometheus instruments of the bookings server
// and the HTTP endpoint exposing them.
package metrics

import (
	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	OperationRegister = "register"
	OperationLogin    = "login"
	OperationHistory  = "history"
	OperationBook     = "book"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// AuthAttempts counts service calls by operation and outcome. The outcome is
// "success" or the error kind name.
var AuthAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookings_auth_attempts_total",
		Help: "Total number of auth and booking operations by outcome",
	},
	[]string{"operation", "outcome"},
)

// UnresolvedReferences counts booking references with no matching booking.
var UnresolvedReferences = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "bookings_references_unresolved_total",
		Help: "Total number of booking references that did not resolve to a booking",
	},
)

// ResolveBatchSize observes how many distinct ids go into one lookup.
var ResolveBatchSize = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "bookings_resolve_batch_size",
		Help:    "Number of distinct booking ids per batched lookup",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	},
)

// RegisterMetrics registers the package instruments with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AuthAttempts)
	reg.MustRegister(UnresolvedReferences)
	reg.MustRegister(ResolveBatchSize)
}

// RecordOutcome increments AuthAttempts for operation according to err.
func RecordOutcome(operation string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
		if k := common.KindOf(err); k != 0 {
			outcome = k.String()
		}
	}
	AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// RecordResolve records one batched lookup of requested ids that produced
// resolved bookings.
func RecordResolve(requested, resolved int) {
	ResolveBatchSize.Observe(float64(requested))
	if missing := requested - resolved; missing > 0 {
		UnresolvedReferences.Add(float64(missing))
	}
}
