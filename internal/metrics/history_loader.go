package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loaderWindowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "window_total",
		Help:      "Count of fetched block windows.",
	}, []string{"network", "status"})

	loaderWindowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "window_duration_seconds",
		Help:      "Duration of fetching a block window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	loaderFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "flush_total",
		Help:      "Count of batches written to the store.",
	}, []string{"network", "status"})

	loaderFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a batch to the store.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "status"})

	loaderFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "flush_size_blocks",
		Help:      "Number of blocks written per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	}, []string{"network"})

	loaderDrainDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "forced_drain_duration_seconds",
		Help:      "Time the fetch unit waited for a forced drain.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	loaderFetchedBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "fetched_block_number",
		Help:      "Highest block number handed to the writer.",
	}, []string{"network"})

	loaderCommittedBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "committed_block_number",
		Help:      "Highest block number committed to the store.",
	}, []string{"network"})

	loaderIndexBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ckb_history_loader",
		Name:      "index_build_duration_seconds",
		Help:      "Duration of the post-load secondary index build.",
		Buckets:   []float64{1, 5, 15, 30, 60, 300, 900, 1800, 3600},
	}, []string{"network", "status"})
)

// HistoryLoader tracks metrics for the history loader pipeline.
type HistoryLoader struct {
	network string
}

// NewHistoryLoader constructs a HistoryLoader metrics collector.
func NewHistoryLoader(network string) *HistoryLoader {
	return &HistoryLoader{network: orUnknown(network)}
}

// ObserveWindow records the outcome of fetching one window of blocks.
func (m HistoryLoader) ObserveWindow(err error, started time.Time) {
	status := statusOf(err)
	loaderWindowTotal.WithLabelValues(m.network, status).Inc()
	loaderWindowDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveFlush records one batch write.
func (m HistoryLoader) ObserveFlush(err error, blocks int, started time.Time) {
	status := statusOf(err)
	loaderFlushTotal.WithLabelValues(m.network, status).Inc()
	loaderFlushDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	loaderFlushSize.WithLabelValues(m.network).Observe(float64(blocks))
}

// ObserveDrain records how long a forced drain blocked the fetch unit.
func (m HistoryLoader) ObserveDrain(started time.Time) {
	loaderDrainDuration.WithLabelValues(m.network).Observe(time.Since(started).Seconds())
}

// SetFetched records the highest block number handed to the writer.
func (m HistoryLoader) SetFetched(number uint64) {
	loaderFetchedBlocks.WithLabelValues(m.network).Set(float64(number))
}

// SetCommitted records the highest committed block number.
func (m HistoryLoader) SetCommitted(number uint64) {
	loaderCommittedBlock.WithLabelValues(m.network).Set(float64(number))
}

// ObserveIndexBuild records the secondary index build.
func (m HistoryLoader) ObserveIndexBuild(err error, started time.Time) {
	loaderIndexBuildDuration.WithLabelValues(m.network, statusOf(err)).Observe(time.Since(started).Seconds())
}
