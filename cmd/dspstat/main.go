// Package main provides the dspstat CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/dspstat/pkg/config"
	"github.com/orneryd/dspstat/pkg/stats"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dspstat",
		Short: "dspstat - two-pass float32 variance for signal buffers",
		Long: `dspstat computes the sample variance of float32 signal buffers with the
direct (two-pass) method and Bessel's correction.

Features:
  • Text, YAML and stdin sample sources
  • Seeded synthetic signals (uniform, gaussian, sine, constant)
  • float64 reference check of every result
  • Kernel benchmarks across buffer sizes`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default: search ./dspstat.yaml, ~/.dspstat.yaml)")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dspstat v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	// Info command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the compiled-in variance kernel",
		Run: func(cmd *cobra.Command, args []string) {
			info := stats.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Implementation: %s\n", info.Implementation)
			fmt.Fprintf(out, "Group size:     %d\n", info.GroupSize)
			fmt.Fprintf(out, "CPU features:   %v\n", info.Features)
		},
	})

	// Variance command
	varianceCmd := &cobra.Command{
		Use:   "variance [file|-]",
		Short: "Compute the variance of a sample buffer",
		Long: `Compute the variance of samples read from a file (text or .yaml), from
stdin ("-"), or generated with --generate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVariance,
	}
	varianceCmd.Flags().String("generate", "", "Generate a signal instead of reading input: uniform, gaussian, sine, constant")
	varianceCmd.Flags().Int("count", 1024, "Number of samples to generate")
	varianceCmd.Flags().Int64("seed", 0, "Random seed for generated signals (default from config)")
	varianceCmd.Flags().Bool("check", false, "Also print the float64 reference and relative error")
	rootCmd.AddCommand(varianceCmd)

	// Bench command
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the variance kernel",
		Long:  "Benchmark the variance kernel on generated signals and report throughput and error",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSlice("sizes", nil, "Buffer sizes to benchmark (default from config)")
	benchCmd.Flags().String("signal", "", "Signal kind (default from config)")
	benchCmd.Flags().Int64("seed", 0, "Random seed (default from config)")
	benchCmd.Flags().Int("repeat", 0, "Runs per size, fastest kept (default from config)")
	rootCmd.AddCommand(benchCmd)

	return rootCmd
}

// loadConfig resolves configuration: defaults, file, env, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		// An explicit path must exist; only the discovered one may be absent
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		path = config.FindConfigFile()
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnvVars(cfg)

	flags := cmd.Flags()
	if flags.Lookup("sizes") != nil && flags.Changed("sizes") {
		cfg.Bench.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Lookup("signal") != nil && flags.Changed("signal") {
		cfg.Bench.Signal, _ = flags.GetString("signal")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Bench.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("repeat") != nil && flags.Changed("repeat") {
		cfg.Bench.Repeat, _ = flags.GetInt("repeat")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
