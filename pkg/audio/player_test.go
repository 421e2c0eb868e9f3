package audio

import "testing"

func TestFramesPerBuffer(t *testing.T) {
	cases := []struct {
		rate, fps, want int
	}{
		{44100, 60, 735},
		{48000, 0, 800},
		{44100, 30, 1470},
		{1000, 120, 64},
	}
	for _, c := range cases {
		if got := FramesPerBuffer(c.rate, c.fps); got != c.want {
			t.Fatalf("FramesPerBuffer(%d, %d)=%d, want %d", c.rate, c.fps, got, c.want)
		}
	}
}

func TestApplyVolume(t *testing.T) {
	samples := []float32{1, -1, 0.5, 0}
	applyVolume(samples, 0.5)
	want := []float32{0.5, -0.5, 0.25, 0}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("sample %d=%v, want %v", i, samples[i], want[i])
		}
	}

	loud := []float32{0.9, -0.9}
	applyVolume(loud, 2)
	if loud[0] != 1 || loud[1] != -1 {
		t.Fatalf("not clipped: %v", loud)
	}
}
