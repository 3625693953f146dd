package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mlnet/config"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "glouvain",
		Short:         "Multilayer generalized Louvain community detection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "trace|debug|info|warn|error|disabled")
	pf.StringVar(&opts.logFormat, "log-format", "", "console|json")

	cmd.AddCommand(newDetectCommand(opts), newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the glouvain version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "glouvain", version)
		},
	}
}

// loadConfig reads the configuration file and environment, applies every
// flag the user set explicitly, then validates the merged result.
func (o *rootOptions) loadConfig(flags *pflag.FlagSet, apply func(*config.Config, *pflag.FlagSet)) (*config.Config, error) {
	cfg, err := config.LoadUnvalidated(o.configPath)
	if err != nil {
		return nil, err
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	apply(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if cfg.Format == "console" {
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = f != os.Stderr
		}
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: noColor}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
