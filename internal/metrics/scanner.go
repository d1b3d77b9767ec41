package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "scanner",
		Name:      "process_batch_total",
		Help:      "Count of scanned foreign block ranges.",
	}, []string{"network", "status"})
	scannerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "scanner",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of scanning foreign block ranges.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	scannerBlocksBehind = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "burnbridge7000",
		Subsystem: "scanner",
		Name:      "blocks_behind",
		Help:      "Foreign blocks between scan cursor and chain tip.",
	}, []string{"network"})
	scannerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "scanner",
		Name:      "reorgs_total",
		Help:      "Count of reorgs detected underneath the scan cursor.",
	}, []string{"network"})
	scannerBurnsDiscoveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "scanner",
		Name:      "burns_discovered_total",
		Help:      "Count of burn transactions discovered while scanning.",
	}, []string{"network"})
)

// Scanner tracks metrics for the foreign-chain scanning loop.
type Scanner struct {
	network string
}

// NewScanner creates a Scanner metrics collector.
func NewScanner(network string) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveProcessBatch records the outcome of scanning one height range.
func (m Scanner) ObserveProcessBatch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scannerProcessBatchTotal.WithLabelValues(m.network, status).Inc()
	scannerProcessBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// SetBlocksBehind records current scanner lag.
func (m Scanner) SetBlocksBehind(blocks uint32) {
	scannerBlocksBehind.WithLabelValues(m.network).Set(float64(blocks))
}

// ObserveReorg counts a reorg detected under the cursor.
func (m Scanner) ObserveReorg() {
	scannerReorgsTotal.WithLabelValues(m.network).Inc()
}

// ObserveBurnDiscovered counts a discovered burn transaction.
func (m Scanner) ObserveBurnDiscovered() {
	scannerBurnsDiscoveredTotal.WithLabelValues(m.network).Inc()
}
