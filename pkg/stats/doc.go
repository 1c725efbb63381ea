// Package stats provides the float32 variance kernel used by dspstat.
//
// The kernel implements the direct (two-pass) method:
//
//	mean     = (x[0] + x[1] + ... + x[n-1]) / n
//	variance = ((x[0]-mean)^2 + ... + (x[n-1]-mean)^2) / (n - 1)
//
// Inputs with fewer than two samples have a variance of 0. No error is
// reported for short buffers.
//
// # Grouping
//
// Each pass walks the input in groups of GroupSize elements and then handles
// the n mod GroupSize tail one element at a time. GroupSize is fixed at build
// time:
//
//   - 64-bit targets (amd64, arm64, ppc64, s390x, riscv64, ...): 4
//   - constrained targets (386, arm, mips, mipsle, wasm): 1
//   - any target built with -tags nounroll: 1
//
// # Accumulation Order
//
// Both passes use a single float32 accumulator fed in sequence order, and each
// squared deviation is rounded to float32 before it is added. Every GroupSize
// therefore produces bit-identical results on a given input. Implementations
// that keep several partial sums (for example 8-lane SIMD reductions) will
// differ from this kernel in the last bits; that is expected.
//
// # Usage
//
//	import "github.com/orneryd/dspstat/pkg/stats"
//
//	x := []float32{2, 4, 4, 4, 5, 5, 7, 9}
//	v := stats.Variance(x) // 32/7 ≈ 4.5714286
//
//	// First n samples of a larger buffer
//	v = stats.VarianceN(buf, n)
//
//	info := stats.Info()
//	fmt.Printf("variance kernel: %s (group=%d)\n", info.Implementation, info.GroupSize)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use and do not touch
// global mutable state. Variance, VarianceN and BatchVariance do not allocate;
// Info returns a freshly built Features slice on each call.
//
// # Precision
//
// Accumulation is float32 throughout. For a float64 reference use
// pkg/math/moments.
package stats
