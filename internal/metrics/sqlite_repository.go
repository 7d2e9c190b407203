package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sqliteRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sqlite_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "network", "status"})
	sqliteRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sqlite_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30, 60},
	}, []string{"operation", "network", "status"})
)

// SQLiteRepository tracks metrics for SQLite repository operations.
type SQLiteRepository struct {
	network string
}

// NewSQLiteRepository creates a SQLiteRepository metrics collector.
func NewSQLiteRepository(network string) *SQLiteRepository {
	return &SQLiteRepository{network: orUnknown(network)}
}

// Observe records duration and status of a repository operation.
func (m SQLiteRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	sqliteRepositoryRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	sqliteRepositoryRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
