package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monkey-arcade/internal/assets"
	"github.com/vovakirdan/monkey-arcade/internal/config"
)

// newLogger builds the process logger from --log-level and --log-file.
// With no log file, quiet discards output so the terminal UI stays clean.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "monkey",
	})
	return logger, closer, nil
}

// loadGameConfig resolves the config file and applies --assets.
func loadGameConfig(logger *log.Logger) (config.GameConfig, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	source := path
	if source == "" {
		source = "embedded defaults"
	}
	logger.Debug("config loaded", "source", source, "assets", cfg.Assets.Dir)
	return cfg, path, nil
}

// startAssets begins loading images in the background.
func startAssets(cfg config.GameConfig, logger *log.Logger) *assets.Library {
	lib := assets.NewLibrary(cfg.Assets, logger)
	lib.Load()
	return lib
}

// startWatcher watches path when --watch is set. The returned channel is nil
// when nothing is watched.
func startWatcher(path string, logger *log.Logger) (<-chan config.Reload, func()) {
	if !flagWatch {
		return nil, func() {}
	}
	if path == "" {
		logger.Warn("--watch ignored: running on embedded defaults")
		return nil, func() {}
	}

	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("config watch unavailable", "error", err)
		return nil, func() {}
	}
	logger.Info("watching config", "path", path)

	// Re-apply --assets to every reload
	out := make(chan config.Reload, 1)
	go func() {
		defer close(out)
		for r := range w.Updates() {
			if r.Err == nil && flagAssets != "" {
				r.Config.Assets.Dir = flagAssets
			}
			out <- r
		}
	}()
	return out, func() { w.Close() }
}
