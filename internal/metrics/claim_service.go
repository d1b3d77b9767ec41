package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	claimSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "claim_service",
		Name:      "submissions_total",
		Help:      "Count of claim submission attempts.",
	}, []string{"network", "proof_form", "status"})
	claimSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "claim_service",
		Name:      "submission_duration_seconds",
		Help:      "Duration of claim submission attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "proof_form", "status"})
	claimBurnedAmountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "claim_service",
		Name:      "burned_amount_total",
		Help:      "Total foreign units burned across accepted claims.",
	}, []string{"network"})
)

// ClaimService tracks metrics for claim submission attempts.
type ClaimService struct {
	network string
}

// NewClaimService creates a ClaimService metrics collector.
func NewClaimService(network string) *ClaimService {
	if network == "" {
		network = "unknown"
	}
	return &ClaimService{network: network}
}

// ObserveSubmission records the outcome of a submission attempt.
func (m ClaimService) ObserveSubmission(proofForm string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	claimSubmissionsTotal.WithLabelValues(m.network, proofForm, status).Inc()
	claimSubmissionDuration.WithLabelValues(m.network, proofForm, status).Observe(time.Since(started).Seconds())
}

// AddBurnedAmount accumulates accepted burned value.
func (m ClaimService) AddBurnedAmount(amount uint64) {
	claimBurnedAmountTotal.WithLabelValues(m.network).Add(float64(amount))
}
