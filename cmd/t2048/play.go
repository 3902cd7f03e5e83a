package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagPlaySpeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Slide tiles
  R            - Restart
  K            - Drop an extra tile (debug)
  ?            - Show all keys
  Esc/Q        - Quit

Logs are discarded unless --log-file is given, since the game owns the screen.

Speed options:
  slow, normal, fast, instant

Examples:
  t2048 play
  t2048 play --speed instant
  t2048 play --seed 42 --log-file 2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlaySpeed, "speed", "", "Animation speed: slow, normal, fast, instant")
}

func runPlay(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal; try 'window' or 'replay'")
	}

	cfg, err := loadConfig(flagPlaySpeed)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		logger.Debug("terminal", "width", w, "height", h)
	}
	logger.Info("starting", "frontend", "terminal", "config", cfg.Source)

	game := t2048.New(cfg, t2048.WithLogger(logger))
	return tui.Run(game, runtimeConfig(cfg), logger)
}
