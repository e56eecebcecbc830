package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "plancare", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "plancare", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	CustomerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "plancare", Name: "customer_operations_total", Help: "Customer operations by name and outcome (ok, invalid, not_found, error)."},
		[]string{"operation", "outcome"},
	)
	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "plancare", Name: "store_operation_seconds", Help: "Latency of whole-document loads and saves.", Buckets: prometheus.DefBuckets},
		[]string{"backend", "op"},
	)
	BackupFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "plancare", Name: "snapshot_backup_failures_total", Help: "Snapshot uploads that failed after a successful save."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(CustomerOperations)
	reg.MustRegister(StoreDuration)
	reg.MustRegister(BackupFailures)
}
