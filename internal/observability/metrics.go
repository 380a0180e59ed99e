package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogcms_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RepositoryOperations counts repository calls by table, operation and outcome.
	RepositoryOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogcms_repository_operations_total",
		Help: "Total repository operations by table, operation and outcome",
	}, []string{"table", "operation", "outcome"})

	// ViewCountIncrements counts successful post view increments.
	ViewCountIncrements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogcms_post_view_increments_total",
		Help: "Total number of post view count increments",
	})
)

// Repository operation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeAbsent   = "absent"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// DatabaseMetrics records query latency and outcomes for one table.
type DatabaseMetrics struct {
	table string
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(table string) *DatabaseMetrics {
	return &DatabaseMetrics{table: table}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, m.table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, start)
	}
}

// CountOutcome increments the operation counter for the given outcome.
func (m *DatabaseMetrics) CountOutcome(operation, outcome string) {
	RepositoryOperations.WithLabelValues(m.table, operation, outcome).Inc()
}
