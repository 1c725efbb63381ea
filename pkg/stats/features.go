package stats

import (
	"runtime"

	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
)

// cpuFeatures reports the floating-point relevant CPU features of the host.
// x86 is probed through x/sys/cpu; every other architecture uses vek's
// detection.
func cpuFeatures() []string {
	switch runtime.GOARCH {
	case "amd64", "386":
		return x86Features()
	default:
		return append([]string(nil), vek32.Info().CPUFeatures...)
	}
}

func x86Features() []string {
	var features []string
	if cpu.X86.HasSSE2 {
		features = append(features, "sse2")
	}
	if cpu.X86.HasAVX {
		features = append(features, "avx")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}
	if cpu.X86.HasFMA {
		features = append(features, "fma")
	}
	if cpu.X86.HasAVX512F {
		features = append(features, "avx512f")
	}
	return features
}
