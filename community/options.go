// SPDX-License-Identifier: MIT

// Package community: functional options for Optimize and Detect.
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors panic on nonsensical values (programmer error),
//   - gatherOptions folds them over the defaults.
package community

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxPasses bounds local-move passes per level.
	DefaultMaxPasses = 1000

	// DefaultMaxLevels bounds aggregation levels per run.
	DefaultMaxLevels = 100

	// DefaultMinGain is the smallest gain accepted as an improvement.
	// Smaller gains are treated as rounding noise.
	DefaultMinGain = 1e-10

	// DefaultRestarts is the number of independent runs Detect performs.
	DefaultRestarts = 1

	// DefaultParallelism of 1 keeps local moves sequential.
	DefaultParallelism = 1
)

// RandSource supplies the shuffling randomness. *math/rand.Rand satisfies it.
// Implementations need not be safe for concurrent use: the engine calls
// Intn from a single goroutine.
type RandSource interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
}

// Recorder receives run and level observations. The metrics package
// provides a Prometheus implementation.
type Recorder interface {
	ObserveLevel(level, nodes, communities, moves int, modularity float64)
	ObserveRun(status string, levels, communities int, modularity float64, elapsed time.Duration)
}

// Run statuses reported to Recorder.ObserveRun.
const (
	StatusOK       = "ok"
	StatusInvalid  = "invalid"
	StatusEmpty    = "empty"
	StatusInternal = "internal"
	StatusCanceled = "canceled"
)

// Option configures Optimize and Detect.
type Option func(*options)

type options struct {
	maxPasses   int
	maxLevels   int
	minGain     float64
	rnd         RandSource
	shuffle     bool
	restarts    int
	parallelism int
	logger      zerolog.Logger
	recorder    Recorder
}

// WithMaxPasses bounds local-move passes per level. Panics if n < 1.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic("community: WithMaxPasses requires n >= 1")
	}

	return func(o *options) { o.maxPasses = n }
}

// WithMaxLevels bounds aggregation levels. Panics if n < 1.
func WithMaxLevels(n int) Option {
	if n < 1 {
		panic("community: WithMaxLevels requires n >= 1")
	}

	return func(o *options) { o.maxLevels = n }
}

// WithMinGain sets the improvement threshold. Panics if g < 0 or NaN.
func WithMinGain(g float64) Option {
	if g < 0 || math.IsNaN(g) {
		panic("community: WithMinGain requires g >= 0")
	}

	return func(o *options) { o.minGain = g }
}

// WithRand injects the randomness source and enables shuffled visitation.
// Panics on nil.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("community: WithRand requires a non-nil source")
	}

	return func(o *options) {
		o.rnd = r
		o.shuffle = true
	}
}

// WithSeed is WithRand over math/rand seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithShuffle toggles shuffled visitation. It has no effect without a
// RandSource.
func WithShuffle(on bool) Option {
	return func(o *options) { o.shuffle = on }
}

// WithRestarts makes Detect run n times and keep the partition with the
// highest modularity (the earliest run wins ties). Restarts only differ when
// visitation is shuffled; without a RandSource, or with WithShuffle(false),
// Detect runs once. Panics if n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic("community: WithRestarts requires n >= 1")
	}

	return func(o *options) { o.restarts = n }
}

// WithParallelism evaluates local moves with up to n workers over
// conflict-free batches. n == 1 is sequential. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("community: WithParallelism requires n >= 1")
	}

	return func(o *options) { o.parallelism = n }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder sets the observation sink. Nil disables recording.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{
		maxPasses:   DefaultMaxPasses,
		maxLevels:   DefaultMaxLevels,
		minGain:     DefaultMinGain,
		restarts:    DefaultRestarts,
		parallelism: DefaultParallelism,
		logger:      zerolog.Nop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// shuffling reports whether visitation order is randomized.
func (o *options) shuffling() bool { return o.shuffle && o.rnd != nil }
