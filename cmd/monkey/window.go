package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monkey-arcade/internal/audio"
	"github.com/vovakirdan/monkey-arcade/internal/core"
	"github.com/vovakirdan/monkey-arcade/internal/platform/window"
)

var (
	flagWindowMute  bool
	flagWindowScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window with the full artwork.

Controls:
  Space/Click - Jump (click restarts after game over)
  R           - Restart (after game over)
  Q/Esc       - Quit

Examples:
  monkey window
  monkey window --scale 1.5 --assets ./assets`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowMute, "mute", false, "Disable sound")
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, path, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWindowScale <= 0 {
		flagWindowScale = 1
	}

	lib := startAssets(cfg, logger)
	updates, stopWatch := startWatcher(path, logger)
	defer stopWatch()

	var sink core.AudioSink = core.NopAudio{}
	if !flagWindowMute {
		player := audio.NewPlayer(logger)
		player.Load(lib)
		if initErr := player.Initialize(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer player.Close()
			sink = player
		}
	}

	runErr := window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Library: lib,
		Audio:   sink,
		Updates: updates,
		Logger:  logger,
		WindowW: int(cfg.Canvas.Width * flagWindowScale),
		WindowH: int(cfg.Canvas.Height * flagWindowScale),
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
