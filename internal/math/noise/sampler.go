package noise

import "noisefield/internal/util"

// Default frequencies; time evolves slower than spatial detail.
const (
	DefaultSpatialScale = 0.05
	DefaultTimeScale    = 0.1
)

// Sampler evaluates a Field at scaled pixel coordinates
type Sampler struct {
	Field        Field
	SpatialScale float64
	TimeScale    float64
}

// NewSampler creates a sampler over field with the given frequencies
func NewSampler(field Field, spatialScale, timeScale float64) *Sampler {
	return &Sampler{
		Field:        field,
		SpatialScale: spatialScale,
		TimeScale:    timeScale,
	}
}

// Sample returns the noise value for pixel (x, y) at time t, in [-1, 1]
func (s *Sampler) Sample(x, y int, t float64) float64 {
	n := s.Field.Eval3(
		float64(x)*s.SpatialScale,
		float64(y)*s.SpatialScale,
		t*s.TimeScale,
	)
	return util.Clamp(n, -1, 1)
}
