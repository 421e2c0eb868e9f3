package main

import (
	"flag"
	"os"
	"runtime"

	"noisefield/internal/logger"
	"noisefield/pkg/audio"
	"noisefield/pkg/config"
	"noisefield/pkg/display"
	"noisefield/pkg/engine"
)

// exitSetupFailure is returned when the window, context or buffers cannot
// be created.
const exitSetupFailure = -1

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)

	log := newLogger(cfg.Logging)
	defer log.Close()
	if *logLevel != "" {
		log.SetLevel(*logLevel)
	}
	if cfgErr != nil {
		log.Warn(cfgErr)
	}

	// The mode is read before any window exists
	log.Info("Select mode: 1 = random scatter, 2 = Perlin noise texture")
	mode, err := config.ReadMode(os.Stdin)
	if err != nil {
		log.Warnf("%v; nothing will be drawn", err)
	}
	log.Infof("Mode: %s", mode)

	window, err := display.NewWindow(cfg.Graphics, log)
	if err != nil {
		log.Errorf("Failed to create window: %v", err)
		return exitSetupFailure
	}

	game, err := engine.NewEngine(cfg, mode, window, log)
	if err != nil {
		window.Close()
		log.Errorf("Failed to initialize engine: %v", err)
		return exitSetupFailure
	}

	if cfg.Audio.Enabled {
		player, err := audio.NewPlayer(cfg.Audio, cfg.Graphics.FrameRate)
		if err != nil {
			log.Warnf("Audio disabled: %v", err)
		} else {
			game.AttachAudio(player)
		}
	}

	log.Info("Engine initialized, starting frame loop...")
	game.Run()
	return 0
}

// newLogger builds the console logger, mirrored to a file when configured
func newLogger(cfg config.LoggingConfig) *logger.Logger {
	if cfg.File == "" {
		return logger.NewLogger(cfg.Level)
	}
	log, err := logger.NewMultiLogger(cfg.Level, cfg.File)
	if err != nil {
		log = logger.NewLogger(cfg.Level)
		log.Warnf("Logging to console only: %v", err)
	}
	return log
}
