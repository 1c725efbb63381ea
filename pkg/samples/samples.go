// Package samples supplies float32 sample buffers to the variance kernel.
//
// Buffers come from text files, YAML documents, stdin or a seeded signal
// generator. The kernel in pkg/stats never reads input itself; this package is
// the collaborator that owns the buffer.
//
// Text format: decimal values separated by whitespace, commas or semicolons.
// A '#' starts a comment that runs to the end of the line.
//
//	# accelerometer x-axis
//	0.12, 0.15, 0.11
//	0.09 0.13
//
// YAML format:
//
//	samples: [0.12, 0.15, 0.11, 0.09, 0.13]
package samples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSample is returned when a token is not a float32 value
	ErrInvalidSample = errors.New("samples: invalid sample")
	// ErrUnknownKind is returned by Generate for an unrecognised signal kind
	ErrUnknownKind = errors.New("samples: unknown signal kind")
	// ErrInvalidCount is returned by Generate for a negative count
	ErrInvalidCount = errors.New("samples: invalid count")
)

// Stdin is the path that makes LoadFile read standard input.
const Stdin = "-"

// yamlSamples is the YAML document layout
type yamlSamples struct {
	Samples []float32 `yaml:"samples"`
}

// Parse reads text-format samples from r.
func Parse(r io.Reader) ([]float32, error) {
	var out []float32

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		fields := strings.FieldsFunc(text, isSeparator)
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidSample, line, tok)
			}
			out = append(out, float32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	return out, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', ',', ';':
		return true
	}
	return false
}

// LoadFile reads samples from path. Files ending in .yaml or .yml are decoded
// as YAML; anything else is parsed as text. The path "-" reads stdin.
func LoadFile(path string) ([]float32, error) {
	if path == Stdin {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(f)
	default:
		return Parse(f)
	}
}

func decodeYAML(r io.Reader) ([]float32, error) {
	var doc yamlSamples
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse samples file: %w", err)
	}
	return doc.Samples, nil
}
