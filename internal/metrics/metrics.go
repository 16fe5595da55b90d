package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExecutionsCreated counts created executions by source chain and whether
	// the request replayed an idempotency key
	ExecutionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanz_executions_created_total",
			Help: "Total number of executions created",
		},
		[]string{"source_chain", "duplicate"},
	)

	// ExecutionTransitions counts status transitions by event and outcome
	ExecutionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanz_execution_transitions_total",
			Help: "Total number of execution status transitions",
		},
		[]string{"event", "to", "result"},
	)

	// ExecutionDuration tracks the time from creation to a terminal status
	ExecutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kanz_execution_duration_seconds",
			Help:    "Execution lifetime from creation to terminal status in seconds",
			Buckets: []float64{10, 30, 60, 120, 300, 600, 1800, 3600, 86400},
		},
		[]string{"status"},
	)

	// ExecutionAmount tracks requested USDC amounts
	ExecutionAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kanz_execution_amount_usdc",
			Help:    "Requested execution amount in USDC",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000, 100000},
		},
		[]string{"source_chain"},
	)

	// UpstreamRequests counts outbound provider calls by provider, operation and status class
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanz_upstream_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"provider", "operation", "status"},
	)

	// UpstreamDuration tracks outbound provider call latency
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kanz_upstream_request_duration_seconds",
			Help:    "Upstream provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)

	// TxCacheLookups counts swap transaction cache lookups by result
	TxCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanz_tx_cache_lookups_total",
			Help: "Total number of swap transaction cache lookups",
		},
		[]string{"result"},
	)

	// WatchdogExpired counts executions failed by the stale execution sweeper
	WatchdogExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kanz_watchdog_expired_total",
			Help: "Total number of stale executions marked failed",
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanz_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
