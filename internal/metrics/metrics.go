// file: internal/metrics/metrics.go
// version: 1.0.0
// guid: 5e7a9c1b-3d6f-4e8a-b0c2-4f6a8c0e2b4d

package metrics

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	registerOnce sync.Once

	traversalsRun = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roadname_checker",
		Name:      "traversals_total",
		Help:      "Total number of frontier traversals run",
	})
	traversalsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roadname_checker",
		Name:      "traversals_failed_total",
		Help:      "Total number of traversals aborted by graph data errors",
	})
	pairsFlagged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roadname_checker",
		Name:      "pairs_flagged_total",
		Help:      "Total number of inconsistent name pairs flagged",
	})
	tasksSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roadname_checker",
		Name:      "tasks_submitted_total",
		Help:      "Total number of tasks submitted by outcome",
	}, []string{"outcome"})
	traversalDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "roadname_checker",
		Name:      "traversal_duration_seconds",
		Help:      "Histogram of single-traversal durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs up to ~1.6s
	})

	segmentsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "roadname_checker",
		Name:      "graph_segments_total",
		Help:      "Number of segments in the loaded road graph",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(traversalsRun, traversalsFailed, pairsFlagged,
			tasksSubmitted, traversalDuration, segmentsGauge)
	})
}

func IncTraversal()       { traversalsRun.Inc() }
func IncTraversalFailed() { traversalsFailed.Inc() }
func IncPairFlagged()     { pairsFlagged.Inc() }

func IncTaskSubmitted(outcome string) { tasksSubmitted.WithLabelValues(outcome).Inc() }

func ObserveTraversalDuration(d time.Duration) {
	traversalDuration.Observe(d.Seconds())
}

func SetGraphSegments(n int) { segmentsGauge.Set(float64(n)) }

// WriteTo gathers the default registry and writes every metric family in the
// Prometheus text exposition format.
func WriteTo(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the gathered metrics to path, so batch runs leave their
// counters next to the task output instead of needing a scrape endpoint.
func WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer f.Close()
	return WriteTo(f)
}
