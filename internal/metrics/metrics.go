// Package metrics exposes siphon's Prometheus collectors: queue operation
// counters incremented by the queues service, HTTP request metrics recorded
// by the middleware, and the storage hook fed by the embedded store.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueuesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siphon_queues_created_total",
			Help: "Total number of queue create calls",
		},
	)

	JobsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siphon_jobs_enqueued_total",
			Help: "Jobs enqueued, per queue",
		},
		[]string{"queue"},
	)

	JobsDequeued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siphon_jobs_dequeued_total",
			Help: "Jobs dequeued, per queue",
		},
		[]string{"queue"},
	)

	DequeueEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siphon_dequeue_empty_total",
			Help: "Dequeue calls that found the queue empty, per queue",
		},
		[]string{"queue"},
	)

	PartialJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siphon_partial_jobs_total",
			Help: "Dequeued keys that had no field map, per queue",
		},
		[]string{"queue"},
	)
)

var (
	storeReadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siphon_store_read_bytes_total",
			Help: "Bytes read from the embedded store",
		},
	)

	storeBatchCommits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siphon_store_batch_commits_total",
			Help: "Batches committed to the embedded store",
		},
	)

	storeBatchCommitSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "siphon_store_batch_commit_seconds",
			Help:    "Embedded store batch commit latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// StoreHook feeds embedded store observations into Prometheus. It satisfies
// the pebble store's MetricsHook surface.
type StoreHook struct{}

func (StoreHook) ObserveRead(_ time.Duration, bytes int) {
	storeReadBytes.Add(float64(bytes))
}

func (StoreHook) ObserveBatchCommit(elapsed time.Duration, _ int) {
	storeBatchCommits.Inc()
	storeBatchCommitSeconds.Observe(elapsed.Seconds())
}
