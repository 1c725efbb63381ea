package stats

// Implementation identifies the compiled-in variant of the variance kernel.
type Implementation string

const (
	// ImplGrouped processes GroupSize elements per loop iteration
	ImplGrouped Implementation = "grouped"
	// ImplScalar processes one element per loop iteration
	ImplScalar Implementation = "scalar"
)

// RuntimeInfo describes the active variance kernel
type RuntimeInfo struct {
	// Implementation is the compiled-in kernel variant
	Implementation Implementation
	// GroupSize is the number of elements handled per loop iteration
	GroupSize int
	// Features lists CPU features detected on this machine
	Features []string
}

// Variance computes the sample variance of src using the two-pass method.
//
// The result is sum((x[i]-mean)^2) / (len(src)-1). Inputs with fewer than
// two elements return 0.
//
// Example:
//
//	v := stats.Variance([]float32{2, 4, 4, 4, 5, 5, 7, 9}) // 4.5714286
func Variance(src []float32) float32 {
	return variance(src, GroupSize)
}

// VarianceN computes the sample variance of the first n elements of src.
//
// The caller guarantees n <= len(src); the kernel does not check it. Any
// n <= 1 returns 0 without reading src.
func VarianceN(src []float32, n int) float32 {
	if n <= 1 {
		return 0
	}
	return variance(src[:n], GroupSize)
}

// BatchVariance computes the variance of each consecutive frameLen-sized frame
// in frames and writes it to results.
//
// Parameters:
//   - frames: Contiguous array of [num_frames × frameLen] float32
//   - frameLen: Samples per frame
//   - results: Output array of at least [num_frames] float32
//
// A trailing partial frame is ignored. Nothing is written when frameLen is not
// positive, frames holds no whole frame, or results is too short.
func BatchVariance(frames []float32, frameLen int, results []float32) {
	if frameLen <= 0 {
		return
	}
	numFrames := len(frames) / frameLen
	if numFrames == 0 || len(results) < numFrames {
		return
	}

	for i := 0; i < numFrames; i++ {
		start := i * frameLen
		end := start + frameLen
		results[i] = variance(frames[start:end], GroupSize)
	}
}

// Info returns information about the compiled-in variance kernel.
//
// Example:
//
//	info := stats.Info()
//	fmt.Printf("%s kernel, %d per group\n", info.Implementation, info.GroupSize)
func Info() RuntimeInfo {
	impl := ImplGrouped
	if GroupSize == 1 {
		impl = ImplScalar
	}
	return RuntimeInfo{
		Implementation: impl,
		GroupSize:      GroupSize,
		Features:       cpuFeatures(),
	}
}

func variance(src []float32, group int) float32 {
	n := len(src)
	if n <= 1 {
		return 0
	}

	mean := sum(src, group) / float32(n)
	return sumSquaredDeviations(src, mean, group) / float32(n-1)
}

// sum adds src in sequence order into a single accumulator.
func sum(src []float32, group int) float32 {
	acc := float32(0)

	i := 0
	for ; i+group <= len(src); i += group {
		blk := src[i : i+group : i+group]
		for _, v := range blk {
			acc += v
		}
	}

	// Tail of fewer than group elements
	for ; i < len(src); i++ {
		acc += src[i]
	}

	return acc
}

// sumSquaredDeviations accumulates (x-mean)^2 in sequence order. The explicit
// float32 conversion rounds each square before the add so it cannot be fused
// into an FMA on arm64, ppc64 or s390x.
func sumSquaredDeviations(src []float32, mean float32, group int) float32 {
	acc := float32(0)

	i := 0
	for ; i+group <= len(src); i += group {
		blk := src[i : i+group : i+group]
		for _, v := range blk {
			d := v - mean
			acc += float32(d * d)
		}
	}

	for ; i < len(src); i++ {
		d := src[i] - mean
		acc += float32(d * d)
	}

	return acc
}
