package engine

import (
	"fmt"
	"iter"
	"time"

	"noisefield/internal/logger"
	"noisefield/internal/math/noise"
	"noisefield/pkg/config"
	"noisefield/pkg/procedural"
)

// TextureSynthesizer fills a pixel buffer for time t
type TextureSynthesizer interface {
	Synthesize(buf *procedural.PixelBuffer, t float64)
}

// PointSource yields the lit cells of one scatter frame
type PointSource interface {
	Points(width, height int) iter.Seq[procedural.Point]
}

// Voice writes audio samples in [-1, 1]
type Voice interface {
	FillAudio(out []float32)
}

// AudioSink plays one buffer of samples per call
type AudioSink interface {
	Play(fill func(out []float32)) error
	Close() error
}

// Engine runs the frame loop for a single, fixed mode
type Engine struct {
	surface   Surface
	logger    *logger.Logger
	mode      config.Mode
	width     int
	height    int
	title     string
	frameRate int

	synth   TextureSynthesizer
	scatter PointSource
	buffer  *procedural.PixelBuffer

	audio AudioSink
	voice Voice

	frames    int
	lastStats time.Time
}

// NewEngine prepares the frame loop on an already created surface. The
// caller keeps ownership of surface if an error is returned.
func NewEngine(cfg *config.Config, mode config.Mode, surface Surface, log *logger.Logger) (*Engine, error) {
	field, err := noise.New(cfg.Noise.Algorithm, cfg.Noise.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create noise field: %v", err)
	}

	buffer, err := procedural.NewPixelBuffer(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}

	scatter := procedural.NewScatter(cfg.Scatter.Seed)

	engine := &Engine{
		surface:   surface,
		logger:    log,
		mode:      mode,
		width:     cfg.Graphics.Width,
		height:    cfg.Graphics.Height,
		title:     cfg.Graphics.Title,
		frameRate: cfg.Graphics.FrameRate,
		synth:     procedural.NewNoiseSynthesizer(field, cfg.Noise.SpatialScale, cfg.Noise.TimeScale),
		scatter:   scatter,
		buffer:    buffer,
	}

	switch mode {
	case config.ModeScatter:
		surface.ConfigureProjection(engine.width, engine.height)
		engine.voice = scatter
	case config.ModeNoiseTexture:
		engine.voice = procedural.NewHum(field, cfg.Audio.HumFrequency, cfg.Audio.SampleRate)
	default:
		log.Warnf("Mode %d is not recognized; nothing will be drawn", int(mode))
	}

	log.Debugf("Engine ready: mode=%s size=%dx%d noise=%s", mode, engine.width, engine.height, cfg.Noise.Algorithm)
	return engine, nil
}

// AttachAudio plays the mode's voice through sink, one buffer per frame.
// The engine closes sink on shutdown.
func (e *Engine) AttachAudio(sink AudioSink) {
	e.audio = sink
}

// Run loops until the surface asks to close, then releases the pixel
// buffer, the audio sink and the surface in that order.
func (e *Engine) Run() {
	defer e.shutdown()

	e.lastStats = time.Now()

	for !e.surface.ShouldClose() {
		frameStart := time.Now()

		e.renderFrame(e.surface.Time())
		e.playAudio()

		e.surface.Present()
		e.surface.PollEvents()

		e.updateStats(frameStart)

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}
}

// renderFrame draws one frame for time t according to the mode
func (e *Engine) renderFrame(t float64) {
	e.surface.Clear()

	switch e.mode {
	case config.ModeNoiseTexture:
		e.synth.Synthesize(e.buffer, t)
		e.surface.UploadTexture(e.buffer)
		e.surface.DrawQuad()
	case config.ModeScatter:
		e.surface.DrawPoints(e.scatter.Points(e.width, e.height))
	}
}

func (e *Engine) playAudio() {
	if e.audio == nil || e.voice == nil {
		return
	}
	if err := e.audio.Play(e.voice.FillAudio); err != nil {
		e.logger.Debugf("Audio write: %v", err)
	}
}

// updateStats shows the frame rate in the title once per second
func (e *Engine) updateStats(now time.Time) {
	e.frames++
	if elapsed := now.Sub(e.lastStats); elapsed >= time.Second {
		fps := float64(e.frames) / elapsed.Seconds()
		e.surface.SetTitle(fmt.Sprintf("%s | FPS: %.0f", e.title, fps))
		e.logger.Debugf("%.1f fps", fps)
		e.frames = 0
		e.lastStats = now
	}
}

func (e *Engine) shutdown() {
	e.logger.Info("Shutting down...")

	if e.buffer != nil {
		e.buffer.Release()
		e.buffer = nil
	}
	if e.audio != nil {
		if err := e.audio.Close(); err != nil {
			e.logger.Warnf("Failed to close audio: %v", err)
		}
		e.audio = nil
	}
	e.surface.Close()
}
