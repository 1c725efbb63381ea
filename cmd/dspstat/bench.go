package main

import (
	"fmt"
	"log"
	"testing"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orneryd/dspstat/pkg/math/moments"
	"github.com/orneryd/dspstat/pkg/samples"
	"github.com/orneryd/dspstat/pkg/stats"
)

// benchSink keeps the compiler from discarding kernel calls
var benchSink float32

// benchResult is one row of the bench report
type benchResult struct {
	Size     int
	NsPerOp  float64
	MBPerSec float64
	RelError float64
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := samples.ParseKind(cfg.Bench.Signal)
	if err != nil {
		return err
	}

	info := stats.Info()
	if cfg.Debug() {
		log.Printf("config: %s", cfg)
	}
	log.Printf("Benchmarking %s kernel (group=%d) on %s signal", info.Implementation, info.GroupSize, kind)

	results := make([]benchResult, 0, len(cfg.Bench.Sizes))
	for _, size := range cfg.Bench.Sizes {
		x, err := samples.Generate(kind, size, cfg.Bench.Seed)
		if err != nil {
			return err
		}
		results = append(results, benchSize(x, cfg.Bench.Repeat))
		if cfg.Debug() {
			log.Printf("   size %d done", size)
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "size\tns/op\tMB/s\trel.error\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.2e\t\n", r.Size, r.NsPerOp, r.MBPerSec, r.RelError)
	}
	return w.Flush()
}

// benchSize times stats.Variance on x, keeping the fastest of repeat runs.
func benchSize(x []float32, repeat int) benchResult {
	best := 0.0
	for i := 0; i < repeat; i++ {
		res := testing.Benchmark(func(b *testing.B) {
			for j := 0; j < b.N; j++ {
				benchSink = stats.Variance(x)
			}
		})
		ns := float64(res.T.Nanoseconds()) / float64(max(res.N, 1))
		if i == 0 || ns < best {
			best = ns
		}
	}

	r := benchResult{
		Size:     len(x),
		NsPerOp:  best,
		RelError: moments.RelativeError(stats.Variance(x), moments.Variance(x)),
	}
	if best > 0 {
		// bytes per nanosecond * 1e3 = MB/s
		r.MBPerSec = float64(len(x)*4) / best * 1e3
	}
	return r
}
