package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Noise    NoiseConfig    `yaml:"noise"`
	Scatter  ScatterConfig  `yaml:"scatter"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig contains window and texture settings
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	FrameRate     int    `yaml:"framerate"`      // 0 means uncapped
	TextureFilter string `yaml:"texture_filter"` // linear, nearest
}

// NoiseConfig controls the noise field behind the texture mode
type NoiseConfig struct {
	Algorithm    string  `yaml:"algorithm"` // perlin, opensimplex
	SpatialScale float64 `yaml:"spatial_scale"`
	TimeScale    float64 `yaml:"time_scale"`
	Seed         int64   `yaml:"seed"`
}

// ScatterConfig controls the random scatter mode
type ScatterConfig struct {
	Seed int64 `yaml:"seed"` // 0 means seeded from the clock
}

// AudioConfig contains audio-related configuration
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Volume       float64 `yaml:"volume"`
	SampleRate   int     `yaml:"sample_rate"`
	HumFrequency float64 `yaml:"hum_frequency"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         600,
			Height:        600,
			Title:         "Perlin Noise Texture",
			VSync:         true,
			FrameRate:     0,
			TextureFilter: "linear",
		},
		Noise: NoiseConfig{
			Algorithm:    "perlin",
			SpatialScale: 0.05,
			TimeScale:    0.1,
			Seed:         0,
		},
		Scatter: ScatterConfig{
			Seed: 0,
		},
		Audio: AudioConfig{
			Enabled:      false,
			Volume:       0.2,
			SampleRate:   44100,
			HumFrequency: 110,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadConfig loads the configuration from a file. The returned config is
// always usable: on error it holds the defaults.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config, using defaults: %v", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config, using defaults: %v", err)
	}

	return config, nil
}

// Validate checks values that would make setup fail later
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FrameRate < 0 {
		return fmt.Errorf("graphics framerate must not be negative, got %d", c.Graphics.FrameRate)
	}
	switch c.Graphics.TextureFilter {
	case "linear", "nearest":
	default:
		return fmt.Errorf("unknown texture filter %q", c.Graphics.TextureFilter)
	}
	switch c.Noise.Algorithm {
	case "perlin", "opensimplex":
	default:
		return fmt.Errorf("unknown noise algorithm %q", c.Noise.Algorithm)
	}
	if c.Noise.SpatialScale <= 0 || c.Noise.TimeScale < 0 {
		return fmt.Errorf("noise scales out of range: spatial=%v time=%v", c.Noise.SpatialScale, c.Noise.TimeScale)
	}
	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			return fmt.Errorf("audio volume must be in [0,1], got %v", c.Audio.Volume)
		}
	}
	return nil
}
