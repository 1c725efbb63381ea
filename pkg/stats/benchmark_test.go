package stats

import (
	"fmt"
	"testing"

	"github.com/orneryd/dspstat/pkg/math/moments"
)

// Frame sizes typical for audio and sensor pipelines
var benchmarkSizes = []int{16, 64, 256, 1024, 4096, 16384}

// varianceReference is the plain two-loop form with no grouping
func varianceReference(x []float32) float32 {
	n := len(x)
	if n <= 1 {
		return 0
	}
	sum := float32(0)
	for _, v := range x {
		sum += v
	}
	mean := sum / float32(n)
	acc := float32(0)
	for _, v := range x {
		d := v - mean
		acc += d * d
	}
	return acc / float32(n-1)
}

// BenchmarkVariance benchmarks the kernel at various frame sizes
func BenchmarkVariance(b *testing.B) {
	for _, size := range benchmarkSizes {
		x := uniformSignal(size, 42)
		name := fmt.Sprintf("%d", size)

		b.Run("Kernel-"+name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = Variance(x)
			}
		})

		b.Run("Reference-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = varianceReference(x)
			}
		})

		b.Run("Float64-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = moments.Variance(x)
			}
		})
	}
}

// BenchmarkGroupSize compares group sizes on the same input
func BenchmarkGroupSize(b *testing.B) {
	x := uniformSignal(4096, 42)

	for _, group := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("group-%d", group), func(b *testing.B) {
			b.SetBytes(int64(len(x) * 4))
			for i := 0; i < b.N; i++ {
				_ = variance(x, group)
			}
		})
	}
}

// BenchmarkBatchVariance measures per-frame variance over a long capture
func BenchmarkBatchVariance(b *testing.B) {
	const frameLen = 256
	const numFrames = 1000
	frames := uniformSignal(frameLen*numFrames, 7)
	results := make([]float32, numFrames)

	b.SetBytes(int64(len(frames) * 4))
	for i := 0; i < b.N; i++ {
		BatchVariance(frames, frameLen, results)
	}
}
