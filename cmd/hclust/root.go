package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/cluster"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "hclust",
		Short:         "Agglomerative hierarchical clustering with NN-chain dendrograms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with default settings")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(a.newClusterCmd(), a.newCutCmd(), a.newSampleCmd())

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", a.configPath, "kind", cfg.Kind, "linkage", cfg.Linkage)

	return nil
}

// setting returns the flag value when the flag was given, else the
// configured value.
func setting[T any](cmd *cobra.Command, name string, flag, configured T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}

	return configured
}

// kind resolves --kind against the configuration.
func (a *app) kind(cmd *cobra.Command, flag string) (cluster.Kind, error) {
	return cluster.ParseKind(setting(cmd, "kind", flag, a.cfg.Kind))
}
