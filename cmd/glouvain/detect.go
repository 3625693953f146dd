package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/config"
	"github.com/katalvlaran/mlnet/metrics"
	"github.com/katalvlaran/mlnet/mlio"
)

// detectFlags mirrors the config fields the detect command can override.
type detectFlags struct {
	gamma, omega float64
	seed         int64
	restarts     int
	parallelism  int
	maxLevels    int
	separator    string
	header       bool
	format       string
	output       string
	metrics      string
	timeout      time.Duration
}

func newDetectCommand(root *rootOptions) *cobra.Command {
	f := &detectFlags{}
	cmd := &cobra.Command{
		Use:   "detect [edge-list]",
		Short: "Detect communities in a multilayer edge list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd.Flags(), f.apply)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input.Path = args[0]
			}
			if cfg.Input.Path == "" {
				return errors.New("detect: no edge list given")
			}
			logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger = logger.With().Str("run_id", runID).Logger()

			return runDetect(cmd.Context(), cfg, runID, logger, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&f.gamma, "gamma", 1, "resolution γ > 0")
	fs.Float64Var(&f.omega, "omega", 1, "inter-layer coupling ω ≥ 0")
	fs.Int64Var(&f.seed, "seed", 0, "shuffle seed; 0 keeps natural order")
	fs.IntVar(&f.restarts, "restarts", community.DefaultRestarts, "independent runs, best kept (needs --seed)")
	fs.IntVarP(&f.parallelism, "parallelism", "p", community.DefaultParallelism, "workers evaluating local moves")
	fs.IntVar(&f.maxLevels, "max-levels", community.DefaultMaxLevels, "aggregation level bound")
	fs.StringVar(&f.separator, "separator", string(mlio.DefaultSeparator), "edge-list field separator")
	fs.BoolVar(&f.header, "header", false, "skip the first edge-list record")
	fs.StringVarP(&f.format, "output-format", "f", "text", "text|csv|json")
	fs.StringVarP(&f.output, "output", "o", "", "result file (default stdout)")
	fs.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this textfile")
	fs.DurationVar(&f.timeout, "timeout", 0, "abort after this duration, e.g. 30s")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *detectFlags) apply(cfg *config.Config, fs *pflag.FlagSet) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("gamma", func() { cfg.Gamma = f.gamma })
	set("omega", func() { cfg.Omega = f.omega })
	set("seed", func() { cfg.Seed = f.seed })
	set("restarts", func() { cfg.Restarts = f.restarts })
	set("parallelism", func() { cfg.Parallelism = f.parallelism })
	set("max-levels", func() { cfg.MaxLevels = f.maxLevels })
	set("separator", func() { cfg.Input.Separator = f.separator })
	set("header", func() { cfg.Input.Header = f.header })
	set("output-format", func() { cfg.Output.Format = f.format })
	set("output", func() { cfg.Output.Path = f.output })
	set("metrics", func() { cfg.Output.Metrics = f.metrics })
	set("timeout", func() { cfg.Timeout = f.timeout })
}

// runDetect reads the edge list, detects communities and writes the result.
func runDetect(ctx context.Context, cfg *config.Config, runID string, logger zerolog.Logger, stdout io.Writer) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	net, err := mlio.ReadEdgeListFile(cfg.Input.Path, cfg.ReadOptions()...)
	if err != nil {
		return err
	}
	st := net.Stats()
	logger.Info().
		Str("input", cfg.Input.Path).
		Int("layers", st.Layers).
		Int("actors", st.Actors).
		Int("nodes", st.Nodes).
		Int("edges", st.Edges).
		Msg("glouvain: network loaded")

	var rec community.Recorder
	var reg *prometheus.Registry
	if cfg.Output.Metrics != "" {
		reg = prometheus.NewRegistry()
		rec = metrics.NewRecorder(reg)
	}

	res, runErr := community.DetectContext(ctx, net, cfg.Gamma, cfg.Omega, cfg.DetectOptions(logger, rec)...)
	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.Output.Metrics, reg); err != nil {
			logger.Error().Err(err).Str("path", cfg.Output.Metrics).Msg("glouvain: metrics not written")
		}
	}
	if runErr != nil {
		return runErr
	}

	meta := mlio.Meta{RunID: runID, Input: cfg.Input.Path, Gamma: cfg.Gamma, Omega: cfg.Omega}
	if cfg.Output.Path == "" {
		return writeResult(stdout, cfg.Output.Format, res, meta)
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	if err := writeResult(f, cfg.Output.Format, res, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	logger.Info().Str("path", cfg.Output.Path).Msg("glouvain: result written")

	return nil
}

func writeResult(w io.Writer, format string, res *community.Result, meta mlio.Meta) error {
	switch format {
	case "csv":
		return mlio.WriteCommunitiesCSV(w, res)
	case "json":
		return mlio.WriteResultJSON(w, res, meta)
	default:
		return writeText(w, res)
	}
}

// writeText prints one line per community and a modularity summary.
func writeText(w io.Writer, res *community.Result) error {
	for _, set := range res.Communities {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", set.ID, strings.Join(set.Names(), " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# communities=%d levels=%d modularity=%.6f\n",
		len(res.Communities), len(res.Levels), res.Modularity)

	return err
}
