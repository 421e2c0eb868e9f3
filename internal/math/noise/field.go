// Package noise provides coherent 3D noise fields and a sampler that maps
// integer pixel coordinates and elapsed time onto them.
package noise

import (
	"fmt"
	"strings"

	"github.com/ojrac/opensimplex-go"
)

// Supported noise algorithms
const (
	AlgorithmPerlin      = "perlin"
	AlgorithmOpenSimplex = "opensimplex"
)

// Field is a continuous 3D noise function
type Field interface {
	Eval3(x, y, z float64) float64
}

// New creates the field named by algorithm
func New(algorithm string, seed int64) (Field, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmPerlin:
		return NewPerlin(seed), nil
	case AlgorithmOpenSimplex:
		return opensimplex.New(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise algorithm %q", algorithm)
	}
}
