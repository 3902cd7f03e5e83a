package desktop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const (
	title      = "2048"
	stuckTitle = "2048 - no moves left (r to restart)"
)

// Window adapts a game to ebiten.Game.
type Window struct {
	game   *t2048.Game
	canvas *imageCanvas
	logger *log.Logger
	stuck  bool
}

// NewWindow wraps game. The game must already be Reset.
func NewWindow(game *t2048.Game, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	canvas, err := newImageCanvas()
	if err != nil {
		return nil, err
	}
	return &Window{game: game, canvas: canvas, logger: logger}, nil
}

// Update runs one game frame.
func (w *Window) Update() error {
	frame := pollInput(inpututil.IsKeyJustPressed)
	res := w.game.Step(frame, 1/float64(ebiten.TPS()))
	if res.State.Quit {
		w.logger.Info("quit", "moves", res.State.Moves, "max", res.State.MaxTile)
		return ebiten.Termination
	}

	if res.State.Stuck != w.stuck {
		w.stuck = res.State.Stuck
		if w.stuck {
			ebiten.SetWindowTitle(stuckTitle)
		} else {
			ebiten.SetWindowTitle(title)
		}
	}
	return nil
}

// Draw renders the board.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.game.Draw(w.canvas)
}

// Layout fixes the logical screen to the board size.
func (w *Window) Layout(_, _ int) (int, int) {
	return t2048.WindowSize, t2048.WindowSize
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	game.Reset(cfg)
	w, err := NewWindow(game, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(t2048.WindowSize, t2048.WindowSize)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	return ebiten.RunGame(w)
}
