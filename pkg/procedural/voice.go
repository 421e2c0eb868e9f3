package procedural

import (
	"noisefield/internal/math/noise"
	"noisefield/internal/util"
)

// FillAudio writes white noise from the same coin flips that drive the
// scatter pattern. Samples are -1 or 1.
func (s *Scatter) FillAudio(out []float32) {
	for i := range out {
		if s.On() {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
}

// Hum is a tone made by walking a noise field at audio rate. The phase is
// kept between calls so consecutive buffers join without clicks.
type Hum struct {
	field noise.Field
	step  float64
	phase float64
}

// NewHum creates a hum that crosses frequency lattice cells per second
func NewHum(field noise.Field, frequency float64, sampleRate int) *Hum {
	return &Hum{
		field: field,
		step:  frequency / float64(sampleRate),
	}
}

// FillAudio writes the next len(out) samples, each in [-1, 1]
func (h *Hum) FillAudio(out []float32) {
	for i := range out {
		v := h.field.Eval3(h.phase, 0.5, 0.5)
		out[i] = float32(util.Clamp(v, -1, 1))
		h.phase += h.step
	}
}
