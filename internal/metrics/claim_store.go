// Package metrics exposes prometheus instrumentation for the burn-claim backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	claimStoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "claim_store",
		Name:      "operations_total",
		Help:      "Count of keyed store operations.",
	}, []string{"operation", "status"})
	claimStoreRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "claim_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of keyed store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "status"})
)

// ClaimStore tracks metrics for keyed store operations.
type ClaimStore struct{}

// NewClaimStore creates a ClaimStore metrics collector.
func NewClaimStore() *ClaimStore {
	return &ClaimStore{}
}

// Observe records duration and status of a store operation.
func (m ClaimStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	claimStoreRequestsTotal.WithLabelValues(operation, status).Inc()
	claimStoreRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
