// Package moments provides float64 reference statistics for dspstat.
//
// The float32 kernel in pkg/stats accumulates in float32 for speed. The
// functions here use the same two-pass method with float64 accumulation and
// serve as the reference the kernel is checked against.
//
// Main Functions:
//   - Mean: float64 mean of a float32 sequence
//   - Variance: float64 two-pass variance of a float32 sequence
//   - VarianceFloat64: the same for float64 input
//   - RelativeError: error of a float32 result against a float64 reference
package moments

import "math"

// Mean returns the arithmetic mean of x using float64 accumulation.
// Returns 0 for an empty slice.
//
// Example:
//
//	m := Mean([]float32{1, 2, 3, 4})  // Returns 2.5
func Mean(x []float32) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += float64(v)
	}
	return sum / float64(len(x))
}

// Variance returns the Bessel-corrected sample variance of x, computed with
// the two-pass method in float64. Returns 0 when len(x) < 2.
//
// Example:
//
//	v := Variance([]float32{2, 4, 4, 4, 5, 5, 7, 9})  // Returns 4.571428571428571
func Variance(x []float32) float64 {
	n := len(x)
	if n <= 1 {
		return 0
	}

	mean := Mean(x)
	var acc float64
	for _, v := range x {
		d := float64(v) - mean
		acc += d * d
	}
	return acc / float64(n-1)
}

// VarianceFloat64 is Variance for float64 input.
func VarianceFloat64(x []float64) float64 {
	n := len(x)
	if n <= 1 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range x {
		d := v - mean
		acc += d * d
	}
	return acc / float64(n-1)
}

// RelativeError returns |got-want| / |want|. When want is 0 the absolute
// error is returned instead.
func RelativeError(got float32, want float64) float64 {
	diff := math.Abs(float64(got) - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}
