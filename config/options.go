package config

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/core"
	"github.com/katalvlaran/mlnet/mlio"
)

// DetectOptions turns the algorithm fields into community options. The
// logger and recorder are appended when non-nil/enabled.
func (c *Config) DetectOptions(logger zerolog.Logger, rec community.Recorder) []community.Option {
	opts := []community.Option{
		community.WithMaxLevels(c.MaxLevels),
		community.WithMaxPasses(c.MaxPasses),
		community.WithMinGain(c.MinGain),
		community.WithRestarts(c.Restarts),
		community.WithParallelism(c.Parallelism),
		community.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, community.WithSeed(c.Seed))
	}
	if rec != nil {
		opts = append(opts, community.WithRecorder(rec))
	}

	return opts
}

// ReadOptions turns the input fields into edge-list reader options. The
// configuration must have passed Validate.
func (c *Config) ReadOptions() []mlio.ReadOption {
	opts := []mlio.ReadOption{mlio.WithSeparator([]rune(c.Input.Separator)[0])}
	if c.Input.Header {
		opts = append(opts, mlio.WithHeader())
	}
	if c.Input.Trim {
		opts = append(opts, mlio.WithTrimSpace())
	}
	if c.Input.Loops {
		opts = append(opts, mlio.WithNetworkOptions(core.WithLoops()))
	}

	return opts
}
