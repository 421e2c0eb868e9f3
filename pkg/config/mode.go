package config

import (
	"fmt"
	"io"
)

// Mode selects what the frame loop renders. It is read once at startup.
type Mode int

// Recognized modes. Any other value renders nothing.
const (
	ModeScatter      Mode = 1
	ModeNoiseTexture Mode = 2
)

// Valid reports whether the mode renders anything
func (m Mode) Valid() bool {
	return m == ModeScatter || m == ModeNoiseTexture
}

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeNoiseTexture:
		return "noise-texture"
	default:
		return fmt.Sprintf("none(%d)", int(m))
	}
}

// ReadMode reads one integer from r. Input that is not an integer yields
// Mode(0) together with the parse error; callers decide whether to go on.
func ReadMode(r io.Reader) (Mode, error) {
	var option int
	if _, err := fmt.Fscan(r, &option); err != nil {
		return Mode(0), fmt.Errorf("failed to read mode: %v", err)
	}
	return Mode(option), nil
}
