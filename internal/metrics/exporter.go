package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnbridge7000",
		Subsystem: "clickhouse_exporter",
		Name:      "operations_total",
		Help:      "Count of analytics export operations.",
	}, []string{"operation", "status"})
	exporterRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnbridge7000",
		Subsystem: "clickhouse_exporter",
		Name:      "operation_duration_seconds",
		Help:      "Duration of analytics export operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "status"})
)

// Exporter tracks metrics for ClickHouse analytics exports.
type Exporter struct{}

// NewExporter creates an Exporter metrics collector.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Observe records duration and status of an export operation.
func (m Exporter) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	exporterRequestsTotal.WithLabelValues(operation, status).Inc()
	exporterRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
