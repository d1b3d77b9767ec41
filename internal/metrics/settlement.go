package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementInvariantViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "settlement",
		Name:      "invariant_violations_total",
		Help:      "Count of monetary invariant violations observed in settlement snapshots.",
	}, []string{"invariant"})
	settlementSupply = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "burnbridge7000",
		Subsystem: "settlement",
		Name:      "supply_units",
		Help:      "Latest settlement supply quantities.",
	}, []string{"quantity"})
)

// Settlement tracks metrics for settlement ledger diagnostics.
type Settlement struct{}

// NewSettlement creates a Settlement metrics collector.
func NewSettlement() *Settlement {
	return &Settlement{}
}

// ObserveViolation counts a detected invariant violation.
func (m Settlement) ObserveViolation(invariant string) {
	settlementInvariantViolationsTotal.WithLabelValues(invariant).Inc()
}

// SetSupply records the latest snapshot quantities.
func (m Settlement) SetSupply(m0Total, m0Vaulted, m0Shielded, m1Supply uint64) {
	settlementSupply.WithLabelValues("m0_total").Set(float64(m0Total))
	settlementSupply.WithLabelValues("m0_vaulted").Set(float64(m0Vaulted))
	settlementSupply.WithLabelValues("m0_shielded").Set(float64(m0Shielded))
	settlementSupply.WithLabelValues("m1_supply").Set(float64(m1Supply))
}
