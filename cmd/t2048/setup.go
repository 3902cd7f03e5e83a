package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// loadConfig loads the configuration and applies the speed preset.
func loadConfig(speed string) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseSpeedPreset(speed)
	if err != nil {
		return cfg, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig merges the global flags over the loaded settings.
func runtimeConfig(cfg config.GameConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if cfg.Runtime.TickRate > 0 {
		rc.TickRate = cfg.Runtime.TickRate
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	return rc
}

// newLogger builds the logger. Output goes to --log-file when set, otherwise
// to fallback. The returned cleanup must be called on exit.
func newLogger(cfg config.GameConfig, fallback io.Writer) (*log.Logger, func(), error) {
	levelName := cfg.Runtime.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	w := fallback
	cleanup := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, cleanup, nil
}
