// Package config loads the glouvain CLI configuration from defaults, an
// optional YAML file, a .env file and MLNET_* environment variables, in
// that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/mlio"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MLNET_"

// Config is the full CLI configuration.
type Config struct {
	Gamma float64 `yaml:"gamma" validate:"gt=0,finite"`
	Omega float64 `yaml:"omega" validate:"gte=0,finite"`

	// Seed enables shuffled visiting order and restarts. 0 keeps the
	// deterministic natural order.
	Seed        int64   `yaml:"seed"`
	Restarts    int     `yaml:"restarts" validate:"min=1"`
	Parallelism int     `yaml:"parallelism" validate:"min=1,max=256"`
	MaxLevels   int     `yaml:"max_levels" validate:"min=1"`
	MaxPasses   int     `yaml:"max_passes" validate:"min=1"`
	MinGain     float64 `yaml:"min_gain" validate:"gte=0,finite"`

	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	Input  Input  `yaml:"input"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Input describes the edge list.
type Input struct {
	Path      string `yaml:"path"`
	Separator string `yaml:"separator" validate:"len=1,separator"`
	Header    bool   `yaml:"header"`
	Trim      bool   `yaml:"trim"`
	Loops     bool   `yaml:"loops"`
}

// Output describes where results go. Empty paths mean stdout / disabled.
type Output struct {
	Format  string `yaml:"format" validate:"oneof=text csv json"`
	Path    string `yaml:"path"`
	Metrics string `yaml:"metrics"`
}

// Log selects zerolog level and writer.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Gamma:       1,
		Omega:       1,
		Restarts:    community.DefaultRestarts,
		Parallelism: community.DefaultParallelism,
		MaxLevels:   community.DefaultMaxLevels,
		MaxPasses:   community.DefaultMaxPasses,
		MinGain:     community.DefaultMinGain,
		Input:       Input{Separator: string(mlio.DefaultSeparator)},
		Output:      Output{Format: "text"},
		Log:         Log{Level: "info", Format: "console"},
	}
}

// Load builds a configuration from Default, the YAML file at path (skipped
// when path is empty), a .env file in the working directory (if present)
// and the MLNET_* environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate, for callers that
// layer further overrides (command-line flags) and validate once at the end.
func LoadUnvalidated(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from MLNET_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}

	float("GAMMA", &c.Gamma)
	float("OMEGA", &c.Omega)
	float("MIN_GAIN", &c.MinGain)
	integer("RESTARTS", &c.Restarts)
	integer("PARALLELISM", &c.Parallelism)
	integer("MAX_LEVELS", &c.MaxLevels)
	integer("MAX_PASSES", &c.MaxPasses)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err))
		} else {
			c.Timeout = d
		}
	}
	str("INPUT", &c.Input.Path)
	if v, ok := lookup(EnvPrefix + "SEPARATOR"); ok {
		c.Input.Separator = v
	}
	str("OUTPUT", &c.Output.Path)
	str("OUTPUT_FORMAT", &c.Output.Format)
	str("METRICS", &c.Output.Metrics)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
