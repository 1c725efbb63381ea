package moments

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		x        []float32
		expected float64
	}{
		{name: "empty", x: nil, expected: 0},
		{name: "single", x: []float32{7}, expected: 7},
		{name: "simple", x: []float32{1, 2, 3, 4}, expected: 2.5},
		{name: "negative", x: []float32{-1, -2, -3}, expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.x); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name     string
		x        []float32
		expected float64
	}{
		{name: "empty", x: []float32{}, expected: 0},
		{name: "single", x: []float32{3}, expected: 0},
		{name: "pair equal", x: []float32{10, 10}, expected: 0},
		{name: "textbook", x: []float32{2, 4, 4, 4, 5, 5, 7, 9}, expected: 32.0 / 7.0},
		{name: "pair", x: []float32{1, 3}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Variance(tt.x); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Variance() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVarianceFloat64MatchesFloat32Input(t *testing.T) {
	x32 := []float32{0.5, 1.25, -3, 8, 2.75}
	x64 := make([]float64, len(x32))
	for i, v := range x32 {
		x64[i] = float64(v)
	}

	if a, b := Variance(x32), VarianceFloat64(x64); a != b {
		t.Errorf("Variance() = %v, VarianceFloat64() = %v", a, b)
	}
	if v := VarianceFloat64([]float64{1}); v != 0 {
		t.Errorf("VarianceFloat64(single) = %v, want 0", v)
	}
}

func TestRelativeError(t *testing.T) {
	if e := RelativeError(1.5, 1.5); e != 0 {
		t.Errorf("RelativeError(equal) = %v, want 0", e)
	}
	if e := RelativeError(11, 10); math.Abs(e-0.1) > 1e-12 {
		t.Errorf("RelativeError(11, 10) = %v, want 0.1", e)
	}
	if e := RelativeError(0.25, 0); e != 0.25 {
		t.Errorf("RelativeError(0.25, 0) = %v, want absolute error 0.25", e)
	}
}
