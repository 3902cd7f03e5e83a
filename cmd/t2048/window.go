package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/desktop"
)

var flagWindowSpeed string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x600 window and play with the keyboard.

Controls:
  Arrows/WASD  - Slide tiles
  R            - Restart
  K            - Drop an extra tile (debug)
  Esc/Q        - Quit

Examples:
  t2048 window
  t2048 window --speed slow --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowSpeed, "speed", "", "Animation speed: slow, normal, fast, instant")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagWindowSpeed)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting", "frontend", "window", "config", cfg.Source)
	game := t2048.New(cfg, t2048.WithLogger(logger))
	return desktop.Run(game, runtimeConfig(cfg), logger)
}
