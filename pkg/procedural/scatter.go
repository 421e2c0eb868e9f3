package procedural

import (
	"iter"
	"math/rand/v2"
	"time"
)

// Point is a pixel coordinate with the origin at the top-left corner
type Point struct {
	X, Y int
}

// Scatter produces a fresh random on/off pattern each time it is iterated
type Scatter struct {
	rng *rand.Rand
}

// NewScatter creates a scatter generator. A zero seed is replaced by the
// clock so every run differs.
func NewScatter(seed int64) *Scatter {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scatter{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// On flips one fair coin
func (s *Scatter) On() bool {
	return s.rng.IntN(2) == 1
}

// Points lazily yields every cell of a width×height grid that came up on.
// Each cell has probability 0.5, independently, and the source advances
// between iterations.
func (s *Scatter) Points(width, height int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if s.On() && !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
