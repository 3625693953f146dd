package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mlnet/community"
)

const namespace = "mlnet"
const subsystem = "community"

// Recorder holds the community-detection series of one registry.
type Recorder struct {
	RunsTotal       *prometheus.CounterVec
	RunDuration     prometheus.Histogram
	RunLevels       prometheus.Histogram
	LevelMovesTotal prometheus.Counter
	LevelNodes      *prometheus.GaugeVec
	Modularity      prometheus.Gauge
	Communities     prometheus.Gauge

	mu sync.Mutex // serializes multi-series updates
}

var _ community.Recorder = (*Recorder)(nil)

var (
	defaultOnce     sync.Once
	defaultRecorder *Recorder
)

// NewRecorder registers the series on reg. A nil reg registers nothing,
// which is convenient in tests that only read the collectors directly.
// Registering twice on the same registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	r := &Recorder{}

	r.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total number of detection runs by final status",
		},
		[]string{"status"},
	)
	r.RunDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall time of a detection run in seconds",
		Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})
	r.RunLevels = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "run_levels",
		Help:      "Number of hierarchy levels per successful run",
		Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
	})
	r.LevelMovesTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "level_moves_total",
		Help:      "Total number of committed local moves",
	})
	r.LevelNodes = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "level_nodes",
			Help:      "Node count per hierarchy level of the last run",
		},
		[]string{"level"},
	)
	r.Modularity = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "modularity",
		Help:      "Multilayer modularity of the last successful run",
	})
	r.Communities = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "communities",
		Help:      "Community count of the last successful run",
	})

	return r
}

// DefaultRecorder returns a process-wide Recorder on prometheus.DefaultRegisterer.
func DefaultRecorder() *Recorder {
	defaultOnce.Do(func() {
		defaultRecorder = NewRecorder(prometheus.DefaultRegisterer)
	})
	return defaultRecorder
}

// ObserveLevel records one optimized hierarchy level. Level 0 resets the
// per-level gauge so it only describes the current run.
func (r *Recorder) ObserveLevel(level, nodes, communities, moves int, q float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if level == 0 {
		r.LevelNodes.Reset()
	}
	r.LevelNodes.WithLabelValues(strconv.Itoa(level)).Set(float64(nodes))
	r.LevelMovesTotal.Add(float64(moves))
}

// ObserveRun records the end of a run. Quality gauges are only updated on
// success.
func (r *Recorder) ObserveRun(status string, levels, communities int, q float64, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(elapsed.Seconds())
	if status != community.StatusOK {
		return
	}
	r.RunLevels.Observe(float64(levels))
	r.Modularity.Set(q)
	r.Communities.Set(float64(communities))
}
