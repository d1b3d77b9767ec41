package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	localchainRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "localchain_rpc_client",
		Name:      "operations_total",
		Help:      "Count of local node RPC operations.",
	}, []string{"operation", "status"})
	localchainRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "localchain_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of local node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// LocalchainRPCClient tracks metrics for local node RPC operations.
type LocalchainRPCClient struct{}

// NewLocalchainRPCClient creates a LocalchainRPCClient metrics collector.
func NewLocalchainRPCClient() *LocalchainRPCClient {
	return &LocalchainRPCClient{}
}

// Observe records duration and status of a local node RPC operation.
func (m LocalchainRPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	localchainRPCRequestsTotal.WithLabelValues(operation, status).Inc()
	localchainRPCRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
