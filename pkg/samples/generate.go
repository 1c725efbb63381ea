package samples

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/chewxy/math32"
)

// Kind names a synthetic signal shape.
type Kind string

const (
	// KindUniform draws samples uniformly from [-1, 1)
	KindUniform Kind = "uniform"
	// KindGaussian draws samples from N(0, 1)
	KindGaussian Kind = "gaussian"
	// KindSine is a unit-amplitude sine with a period of SinePeriod samples
	KindSine Kind = "sine"
	// KindConstant repeats 1.0
	KindConstant Kind = "constant"
)

// SinePeriod is the period, in samples, of KindSine.
const SinePeriod = 64

// Kinds lists every supported signal kind.
var Kinds = []Kind{KindUniform, KindGaussian, KindSine, KindConstant}

// ParseKind converts a name to a Kind, ignoring case.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Generate returns n samples of the given kind. The same seed always yields
// the same buffer.
//
// Example:
//
//	x, err := samples.Generate(samples.KindGaussian, 4096, 42)
func Generate(kind Kind, n int, seed int64) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	r := rand.New(rand.NewSource(seed))
	x := make([]float32, n)

	switch kind {
	case KindUniform:
		for i := range x {
			x[i] = r.Float32()*2 - 1 // [-1, 1]
		}
	case KindGaussian:
		for i := range x {
			x[i] = float32(r.NormFloat64())
		}
	case KindSine:
		// Random phase so different seeds give different buffers
		phase := r.Float32() * 2 * math32.Pi
		for i := range x {
			x[i] = math32.Sin(2*math32.Pi*float32(i)/SinePeriod + phase)
		}
	case KindConstant:
		for i := range x {
			x[i] = 1
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return x, nil
}
