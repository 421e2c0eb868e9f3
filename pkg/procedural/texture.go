// Package procedural generates the per-frame content of the demo: the
// grayscale noise texture, the random point scatter and matching audio.
package procedural

import (
	"math"

	"noisefield/internal/math/noise"
	"noisefield/internal/util"
)

// Sampler yields a noise value in [-1, 1] for a pixel at time t
type Sampler interface {
	Sample(x, y int, t float64) float64
}

// Synthesizer fills a PixelBuffer with animated grayscale noise
type Synthesizer struct {
	sampler Sampler
}

// NewSynthesizer creates a texture synthesizer over sampler
func NewSynthesizer(sampler Sampler) *Synthesizer {
	return &Synthesizer{sampler: sampler}
}

// NewNoiseSynthesizer builds the sampler from a noise field and frequencies
func NewNoiseSynthesizer(field noise.Field, spatialScale, timeScale float64) *Synthesizer {
	return NewSynthesizer(noise.NewSampler(field, spatialScale, timeScale))
}

// Intensity maps a noise value in [-1, 1] to a byte; -1 is 0 and 1 is 255.
func Intensity(n float64) uint8 {
	v := math.Round((n + 1) * 127.5)
	return uint8(util.Clamp(v, 0, 255))
}

// Synthesize overwrites every byte of buf with the field at time t
func (s *Synthesizer) Synthesize(buf *PixelBuffer, t float64) {
	i := 0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := Intensity(s.sampler.Sample(x, y, t))
			buf.Pix[i] = c   // Red
			buf.Pix[i+1] = c // Green
			buf.Pix[i+2] = c // Blue
			i += BytesPerPixel
		}
	}
}
