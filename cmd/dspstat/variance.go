package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orneryd/dspstat/pkg/math/moments"
	"github.com/orneryd/dspstat/pkg/samples"
	"github.com/orneryd/dspstat/pkg/stats"
)

func runVariance(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Debug() {
		log.Printf("config: %s", cfg)
	}

	generate, _ := cmd.Flags().GetString("generate")
	count, _ := cmd.Flags().GetInt("count")
	check, _ := cmd.Flags().GetBool("check")

	var x []float32
	switch {
	case generate != "" && len(args) > 0:
		return fmt.Errorf("use either an input file or --generate, not both")
	case generate != "":
		kind, err := samples.ParseKind(generate)
		if err != nil {
			return err
		}
		x, err = samples.Generate(kind, count, cfg.Bench.Seed)
		if err != nil {
			return err
		}
		if cfg.Debug() {
			log.Printf("generated %d %s samples (seed %d)", len(x), kind, cfg.Bench.Seed)
		}
	default:
		path := samples.Stdin
		if len(args) > 0 {
			path = args[0]
		}
		x, err = samples.LoadFile(path)
		if err != nil {
			return err
		}
		if cfg.Debug() {
			log.Printf("loaded %d samples from %s", len(x), path)
		}
	}

	v := stats.Variance(x)
	out := cmd.OutOrStdout()
	prec := cfg.Output.Precision

	if !check {
		fmt.Fprintln(out, formatFloat(v, prec))
		return nil
	}

	ref := moments.Variance(x)
	fmt.Fprintf(out, "count:          %d\n", len(x))
	fmt.Fprintf(out, "variance:       %s\n", formatFloat(v, prec))
	fmt.Fprintf(out, "reference:      %s\n", strconv.FormatFloat(ref, 'g', prec, 64))
	fmt.Fprintf(out, "relative error: %.3g\n", moments.RelativeError(v, ref))
	return nil
}

func formatFloat(v float32, prec int) string {
	return strconv.FormatFloat(float64(v), 'g', prec, 32)
}
