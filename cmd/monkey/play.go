package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monkey-arcade/internal/audio"
	"github.com/vovakirdan/monkey-arcade/internal/core"
	"github.com/vovakirdan/monkey-arcade/internal/platform/tui"
)

var (
	flagMute     bool
	flagShotsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Jump (click restarts after game over)
  R/Enter        - Restart (after game over)
  Ctrl+S         - Save a PNG screenshot
  Q/Ctrl+C       - Quit

Examples:
  monkey play
  monkey play --seed 42
  monkey play --config ./my-monkey.yaml --watch
  monkey play --log-file monkey.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagShotsDir, "screenshots", "", "Screenshot directory (default: ~/.monkey/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
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

	// Get terminal size early so the first frame fits
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	lib := startAssets(cfg, logger)
	updates, stopWatch := startWatcher(path, logger)
	defer stopWatch()

	var sink core.AudioSink = core.NopAudio{}
	if !flagMute {
		player := audio.NewPlayer(logger)
		player.Load(lib)
		if initErr := player.Initialize(); initErr != nil {
			// Non-fatal, game can run without sound
			logger.Debug("audio disabled", "error", initErr)
		} else {
			defer player.Close()
			sink = player
		}
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Library:  lib,
		Audio:    sink,
		Updates:  updates,
		ShotsDir: flagShotsDir,
		Logger:   logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
