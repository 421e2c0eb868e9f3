package engine

import (
	"io"
	"iter"
	"slices"
	"testing"

	"noisefield/internal/logger"
	"noisefield/pkg/config"
	"noisefield/pkg/procedural"
)

// fakeSurface closes itself after a fixed number of presented frames
type fakeSurface struct {
	frames    int
	presented int

	events      *[]string
	clears      int
	uploads     int
	quads       int
	points      int
	projections int
	closed      int
	lastUpload  []byte
	panicOnQuad bool
}

func newFakeSurface(frames int, events *[]string) *fakeSurface {
	return &fakeSurface{frames: frames, events: events}
}

func (s *fakeSurface) record(ev string) {
	if s.events != nil {
		*s.events = append(*s.events, ev)
	}
}

func (s *fakeSurface) ShouldClose() bool { return s.presented >= s.frames }
func (s *fakeSurface) PollEvents() {}
func (s *fakeSurface) Time() float64 { return float64(s.presented) * 0.5 }
func (s *fakeSurface) SetTitle(string) {}
func (s *fakeSurface) Clear() { s.clears++ }
func (s *fakeSurface) Present() { s.presented++ }
func (s *fakeSurface) Close() { s.closed++; s.record("surface") }

func (s *fakeSurface) ConfigureProjection(width, height int) { s.projections++ }

func (s *fakeSurface) DrawPoints(points iter.Seq[procedural.Point]) {
	for range points {
		s.points++
	}
}

func (s *fakeSurface) UploadTexture(buf *procedural.PixelBuffer) {
	s.uploads++
	s.lastUpload = slices.Clone(buf.Pix)
}

func (s *fakeSurface) DrawQuad() {
	if s.panicOnQuad {
		panic("draw failed")
	}
	s.quads++
}

type spySynth struct {
	calls int
	times []float64
}

func (s *spySynth) Synthesize(buf *procedural.PixelBuffer, t float64) {
	s.calls++
	s.times = append(s.times, t)
	buf.Fill(42)
}

type spyScatter struct {
	calls int
}

func (s *spyScatter) Points(width, height int) iter.Seq[procedural.Point] {
	s.calls++
	return func(yield func(procedural.Point) bool) {
		yield(procedural.Point{X: 0, Y: 0})
	}
}

type fakeSink struct {
	plays  int
	events *[]string
}

func (f *fakeSink) Play(fill func(out []float32)) error {
	fill(make([]float32, 16))
	f.plays++
	return nil
}

func (f *fakeSink) Close() error {
	*f.events = append(*f.events, "audio")
	return nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Graphics.Width = 32
	cfg.Graphics.Height = 24
	cfg.Scatter.Seed = 3
	return cfg
}

func testLogger() *logger.Logger {
	return logger.New("error", io.Discard, nil)
}

func newSpiedEngine(t *testing.T, mode config.Mode, surface *fakeSurface) (*Engine, *spySynth, *spyScatter) {
	t.Helper()
	e, err := NewEngine(testConfig(), mode, surface, testLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	synth, scatter := &spySynth{}, &spyScatter{}
	e.synth, e.scatter = synth, scatter
	return e, synth, scatter
}

func TestScatterModeNeverSynthesizes(t *testing.T) {
	surface := newFakeSurface(5, nil)
	e, synth, scatter := newSpiedEngine(t, config.ModeScatter, surface)
	e.Run()

	if synth.calls != 0 || surface.uploads != 0 || surface.quads != 0 {
		t.Fatalf("scatter mode touched the texture: synth=%d uploads=%d quads=%d", synth.calls, surface.uploads, surface.quads)
	}
	if scatter.calls != 5 || surface.points != 5 {
		t.Fatalf("scatter calls=%d points=%d, want 5", scatter.calls, surface.points)
	}
	if surface.projections != 1 {
		t.Fatalf("projection configured %d times, want 1", surface.projections)
	}
}

func TestNoiseModeNeverScatters(t *testing.T) {
	surface := newFakeSurface(4, nil)
	e, synth, scatter := newSpiedEngine(t, config.ModeNoiseTexture, surface)
	e.Run()

	if scatter.calls != 0 || surface.points != 0 {
		t.Fatalf("noise mode scattered: calls=%d points=%d", scatter.calls, surface.points)
	}
	if synth.calls != 4 || surface.uploads != 4 || surface.quads != 4 {
		t.Fatalf("synth=%d uploads=%d quads=%d, want 4 each", synth.calls, surface.uploads, surface.quads)
	}
	if surface.projections != 0 {
		t.Fatal("projection must only be configured in scatter mode")
	}
	if !slices.Equal(synth.times, []float64{0, 0.5, 1, 1.5}) {
		t.Fatalf("frame times %v", synth.times)
	}
	if surface.lastUpload[0] != 42 {
		t.Fatal("uploaded buffer is not the synthesized one")
	}
}

func TestUnknownModeRendersNothing(t *testing.T) {
	for _, mode := range []config.Mode{0, 3, -1} {
		surface := newFakeSurface(3, nil)
		e, synth, scatter := newSpiedEngine(t, mode, surface)
		e.Run()

		if synth.calls != 0 || scatter.calls != 0 || surface.uploads != 0 || surface.points != 0 {
			t.Fatalf("mode %d drew something", mode)
		}
		if surface.clears != 3 || surface.presented != 3 {
			t.Fatalf("mode %d: clears=%d presents=%d, want 3", mode, surface.clears, surface.presented)
		}
	}
}

func TestRealGeneratorsPerMode(t *testing.T) {
	surface := newFakeSurface(2, nil)
	e, err := NewEngine(testConfig(), config.ModeNoiseTexture, surface, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	e.Run()
	if len(surface.lastUpload) != 32*24*3 {
		t.Fatalf("uploaded %d bytes", len(surface.lastUpload))
	}

	surface = newFakeSurface(2, nil)
	e, err = NewEngine(testConfig(), config.ModeScatter, surface, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	e.Run()
	if surface.points == 0 || surface.points > 2*32*24 {
		t.Fatalf("implausible point count %d", surface.points)
	}
}

func TestShutdownOrder(t *testing.T) {
	var events []string
	surface := newFakeSurface(2, &events)
	e, _, _ := newSpiedEngine(t, config.ModeNoiseTexture, surface)
	sink := &fakeSink{events: &events}
	e.AttachAudio(sink)
	buf := e.buffer

	e.Run()

	if buf.Pix != nil {
		t.Fatal("pixel buffer not released")
	}
	if sink.plays != 2 {
		t.Fatalf("audio played %d times, want 2", sink.plays)
	}
	if !slices.Equal(events, []string{"audio", "surface"}) {
		t.Fatalf("shutdown order %v", events)
	}
}

func TestShutdownOnPanic(t *testing.T) {
	surface := newFakeSurface(5, nil)
	surface.panicOnQuad = true
	e, _, _ := newSpiedEngine(t, config.ModeNoiseTexture, surface)
	buf := e.buffer

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate")
		}
		if surface.closed != 1 || buf.Pix != nil {
			t.Fatalf("resources not released: closed=%d", surface.closed)
		}
	}()
	e.Run()
}

func TestNewEngineSetupFailures(t *testing.T) {
	cfg := testConfig()
	cfg.Graphics.Width = 0
	if _, err := NewEngine(cfg, config.ModeNoiseTexture, newFakeSurface(1, nil), testLogger()); err == nil {
		t.Fatal("expected allocation error for zero width")
	}

	cfg = testConfig()
	cfg.Noise.Algorithm = "value"
	if _, err := NewEngine(cfg, config.ModeNoiseTexture, newFakeSurface(1, nil), testLogger()); err == nil {
		t.Fatal("expected error for unknown noise algorithm")
	}
}
