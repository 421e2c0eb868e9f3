// Package audio plays generated samples through the default output device.
package audio

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"noisefield/pkg/config"
)

const numChannels = 1

// Player writes one buffer per frame to a blocking PortAudio stream. It has
// no callback, so samples are produced on the caller's thread.
type Player struct {
	stream *portaudio.Stream
	buffer []float32
	volume float32
}

// FramesPerBuffer returns how many samples cover one video frame
func FramesPerBuffer(sampleRate, frameRate int) int {
	if frameRate <= 0 {
		frameRate = 60
	}
	n := sampleRate / frameRate
	if n < 64 {
		n = 64
	}
	return n
}

// NewPlayer initializes PortAudio and opens the default output stream
func NewPlayer(cfg config.AudioConfig, frameRate int) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %v", err)
	}

	p := &Player{
		buffer: make([]float32, FramesPerBuffer(cfg.SampleRate, frameRate)*numChannels),
		volume: float32(cfg.Volume),
	}

	stream, err := portaudio.OpenDefaultStream(0, numChannels, float64(cfg.SampleRate), len(p.buffer), p.buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %v", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %v", err)
	}

	p.stream = stream
	return p, nil
}

// Play fills the buffer, scales it by the volume and writes it.
// An underflow is not an error; the stream just had a gap.
func (p *Player) Play(fill func(out []float32)) error {
	fill(p.buffer)
	applyVolume(p.buffer, p.volume)

	if err := p.stream.Write(); err != nil && !errors.Is(err, portaudio.OutputUnderflowed) {
		return err
	}
	return nil
}

// applyVolume scales samples and keeps them in [-1, 1]
func applyVolume(samples []float32, volume float32) {
	for i, s := range samples {
		s *= volume
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		samples[i] = s
	}
}

// Close stops the stream and shuts PortAudio down
func (p *Player) Close() error {
	var errs []error
	if err := p.stream.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop audio stream: %v", err))
	}
	if err := p.stream.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close audio stream: %v", err))
	}
	if err := portaudio.Terminate(); err != nil {
		errs = append(errs, fmt.Errorf("failed to terminate PortAudio: %v", err))
	}
	return errors.Join(errs...)
}
