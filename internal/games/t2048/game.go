package t2048

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game ties the board, resolver, spawner and animator into one per-frame
// update. Frontends feed it input frames and elapsed time, and draw it
// through a core.Canvas.
type Game struct {
	cfg      config.GameConfig
	palette  config.Palette
	animator Animator
	logger   *log.Logger

	board   *Board
	spawner *Spawner
	seed    int64

	tick        uint64
	moves       int
	stuck       bool
	quit        bool
	lastSpawned bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game from cfg with an empty board. Reset seeds it.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		palette: cfg.Theme.PaletteOrDefault(),
		animator: Animator{
			Velocity:     cfg.Animation.Velocity,
			GrowDivisor:  cfg.Animation.GrowDivisor,
			SnapFraction: cfg.Animation.SnapFraction,
		},
		logger: log.New(io.Discard),
		board:  NewBoard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spawner = g.newSpawner(0)
	return g
}

func (g *Game) newSpawner(seed int64) *Spawner {
	s := NewSpawner(seed)
	s.FourOdds = g.cfg.Spawn.FourOdds
	s.Scale = g.cfg.Animation.SpawnScale
	return s
}

// Reset starts a new session: an empty board with two opening tiles.
// The spawner is seeded once here, from rc.Seed or the clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.spawner = g.newSpawner(g.seed)

	g.restart()
	g.logger.Debug("session started", "seed", g.seed)
}

func (g *Game) restart() {
	g.board = NewBoard()
	g.tick = 0
	g.moves = 0
	g.stuck = false
	g.quit = false
	g.spawner.Seed(g.board)
}

// Step runs one frame: input first, then animation by dt seconds.
// Quit, restart and the debug spawn take priority over moves, and only one
// move is applied per frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	var res core.StepResult

	switch {
	case in.Has(core.ActionQuit):
		g.quit = true
	case in.Has(core.ActionRestart):
		g.restart()
		g.logger.Debug("board restarted")
	case in.Has(core.ActionSpawn):
		res.Spawned = g.spawn()
	default:
		if dir, ok := directionOf(in); ok {
			res.Moved = g.Apply(dir)
			res.Spawned = res.Moved && g.lastSpawned
		}
	}

	for _, t := range g.board.Tiles() {
		g.animator.Animate(t, dt)
	}

	res.State = g.State()
	return res
}

// directionOf picks the first move in Up, Down, Left, Right order.
func directionOf(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Apply resolves a move and, if anything changed, spawns one tile.
func (g *Game) Apply(dir Direction) bool {
	res := Resolve(g.board, dir)
	if res.Bounded {
		g.logger.Warn("move stopped at pass limit", "dir", dir, "passes", res.Passes)
	}
	if !res.Moved {
		g.lastSpawned = false
		g.logger.Debug("no move", "dir", dir)
		return false
	}

	g.moves++
	g.logger.Debug("moved", "dir", dir, "slides", res.Slides, "merges", len(res.Merges), "passes", res.Passes)
	for _, m := range res.Merges {
		g.logger.Debug("merged", "from", m.From, "into", m.Into, "value", m.Value)
	}
	g.lastSpawned = g.spawn()
	if !g.lastSpawned {
		g.updateStuck()
	}
	return true
}

func (g *Game) spawn() bool {
	t, ok := g.spawner.Spawn(g.board)
	if !ok {
		return false
	}
	g.logger.Debug("spawned", "cell", t.Key(), "value", t.Value)
	g.updateStuck()
	return true
}

func (g *Game) updateStuck() {
	stuck := !CanMove(g.board)
	if stuck && !g.stuck {
		g.logger.Info("no moves left", "max", g.board.MaxTile(), "moves", g.moves)
	}
	g.stuck = stuck
}

// CanMove reports whether any direction would slide or merge a tile.
// It probes clones and leaves b untouched.
func CanMove(b *Board) bool {
	if !b.Full() {
		return true
	}
	for _, dir := range Directions {
		if Move(b.Clone(), dir) {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tiles:   g.board.Len(),
		MaxTile: g.board.MaxTile(),
		Moves:   g.moves,
		Stuck:   g.stuck,
		Quit:    g.quit,
	}
}

// Board exposes the board for frontends and tests.
func (g *Game) Board() *Board {
	return g.board
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Palette returns the colours the game draws with.
func (g *Game) Palette() config.Palette {
	return g.palette
}

// Animating reports whether any tile is still off its cell.
func (g *Game) Animating() bool {
	for _, t := range g.board.Tiles() {
		if !Settled(t) {
			return true
		}
	}
	return false
}
