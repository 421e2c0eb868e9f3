package procedural

import (
	"math"
	"testing"

	"noisefield/internal/math/noise"
)

func TestScatterOnFrequency(t *testing.T) {
	s := NewScatter(12345)
	const frames = 4000
	target := Point{X: 2, Y: 1}
	hits := 0
	for i := 0; i < frames; i++ {
		for p := range s.Points(4, 3) {
			if p == target {
				hits++
			}
		}
	}
	freq := float64(hits) / frames
	if math.Abs(freq-0.5) > 0.03 {
		t.Fatalf("on frequency %.4f, want about 0.5", freq)
	}
}

func TestScatterPointsInBounds(t *testing.T) {
	s := NewScatter(1)
	seen := make(map[Point]bool)
	for p := range s.Points(30, 20) {
		if p.X < 0 || p.X >= 30 || p.Y < 0 || p.Y >= 20 {
			t.Fatalf("point %v outside 30x20", p)
		}
		if seen[p] {
			t.Fatalf("point %v yielded twice", p)
		}
		seen[p] = true
	}
	if len(seen) == 0 || len(seen) == 600 {
		t.Fatalf("implausible count %d of 600", len(seen))
	}
}

func TestScatterFramesDiffer(t *testing.T) {
	s := NewScatter(99)
	collect := func() map[Point]bool {
		m := make(map[Point]bool)
		for p := range s.Points(16, 16) {
			m[p] = true
		}
		return m
	}
	a, b := collect(), collect()
	for p := range a {
		if !b[p] {
			return
		}
	}
	if len(a) == len(b) {
		t.Fatal("two consecutive frames were identical")
	}
}

func TestScatterStopsEarly(t *testing.T) {
	s := NewScatter(5)
	n := 0
	for range s.Points(100, 100) {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Fatalf("n=%d", n)
	}
}

func TestScatterClockSeed(t *testing.T) {
	s := NewScatter(0)
	n := 0
	for range s.Points(10, 10) {
		n++
	}
	if n > 100 {
		t.Fatalf("n=%d", n)
	}
}

func TestScatterFillAudio(t *testing.T) {
	s := NewScatter(8)
	out := make([]float32, 10000)
	s.FillAudio(out)
	sum := 0.0
	for i, v := range out {
		if v != 1 && v != -1 {
			t.Fatalf("sample %d=%v", i, v)
		}
		sum += float64(v)
	}
	if mean := sum / float64(len(out)); math.Abs(mean) > 0.05 {
		t.Fatalf("mean %.4f, want about 0", mean)
	}
}

func TestHumContinuousAcrossBuffers(t *testing.T) {
	whole := make([]float32, 200)
	NewHum(noise.NewPerlin(0), 110, 44100).FillAudio(whole)

	h := NewHum(noise.NewPerlin(0), 110, 44100)
	first := make([]float32, 120)
	second := make([]float32, 80)
	h.FillAudio(first)
	h.FillAudio(second)

	joined := append(first, second...)
	for i := range whole {
		if whole[i] != joined[i] {
			t.Fatalf("sample %d: %v vs %v", i, whole[i], joined[i])
		}
		if whole[i] < -1 || whole[i] > 1 {
			t.Fatalf("sample %d out of range: %v", i, whole[i])
		}
	}
}
