package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spvRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "spv_rpc_client",
		Name:      "operations_total",
		Help:      "Count of foreign node RPC operations.",
	}, []string{"operation", "network", "status"})
	spvRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "spv_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of foreign node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// SpvRPCClient tracks metrics for foreign node RPC operations.
type SpvRPCClient struct {
	network string
}

// NewSpvRPCClient creates an SpvRPCClient metrics collector.
func NewSpvRPCClient(network string) *SpvRPCClient {
	if network == "" {
		network = "unknown"
	}
	return &SpvRPCClient{network: network}
}

// Observe records duration and status of a node RPC operation.
func (m SpvRPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	spvRPCRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	spvRPCRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
