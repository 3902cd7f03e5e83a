package t2048

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

// setBoard swaps in a board built from grid.
func setBoard(t *testing.T, g *Game, grid Grid) {
	t.Helper()
	g.board = mustBoard(t, grid)
	g.updateStuck()
}

func TestResetSeedsTwoTiles(t *testing.T) {
	g := newTestGame(t, 42)

	state := g.State()
	assert.Equal(t, 2, state.Tiles)
	assert.Equal(t, 2, state.MaxTile)
	assert.Equal(t, 0, state.Moves)
	assert.False(t, state.Stuck)
	assert.False(t, state.Quit)
	assert.Equal(t, int64(42), g.Seed())
}

func TestMoveSpawnsOneTile(t *testing.T) {
	g := newTestGame(t, 1)
	setBoard(t, g, Grid{{0, 0, 0, 2}})

	res := g.Step(core.FrameOf(core.ActionLeft), frame)
	assert.True(t, res.Moved)
	assert.True(t, res.Spawned)
	assert.Equal(t, 2, res.State.Tiles)
	assert.Equal(t, 1, res.State.Moves)

	tile, ok := g.Board().At(0, 0)
	require.True(t, ok)
	assert.Equal(t, 2, tile.Value)
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newTestGame(t, 1)
	setBoard(t, g, Grid{{2, 4, 8, 16}})

	res := g.Step(core.FrameOf(core.ActionLeft), frame)
	assert.False(t, res.Moved)
	assert.False(t, res.Spawned)
	assert.Equal(t, 4, res.State.Tiles)
	assert.Equal(t, 0, res.State.Moves)
}

func TestStepPriority(t *testing.T) {
	g := newTestGame(t, 1)
	setBoard(t, g, Grid{{0, 0, 0, 2}})

	// Quit wins over everything else in the same frame.
	res := g.Step(core.FrameOf(core.ActionLeft, core.ActionRestart, core.ActionQuit), frame)
	assert.True(t, res.State.Quit)
	assert.False(t, res.Moved)
	assert.Equal(t, Grid{{0, 0, 0, 2}}, g.Board().Grid())

	// Up beats Left when both are pressed.
	g = newTestGame(t, 1)
	setBoard(t, g, Grid{{0, 0, 0, 0}, {0, 0, 0, 2}})
	res = g.Step(core.FrameOf(core.ActionLeft, core.ActionUp), frame)
	require.True(t, res.Moved)
	tile, ok := g.Board().At(0, 3)
	require.True(t, ok)
	assert.Equal(t, 2, tile.Value)
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 5)
	setBoard(t, g, Grid{{1024, 512, 0, 0}})
	g.moves = 10

	res := g.Step(core.FrameOf(core.ActionRestart), frame)
	assert.Equal(t, 2, res.State.Tiles)
	assert.Equal(t, 2, res.State.MaxTile)
	assert.Equal(t, 0, res.State.Moves)
}

func TestDebugSpawn(t *testing.T) {
	g := newTestGame(t, 5)
	before := g.Board().Len()

	res := g.Step(core.FrameOf(core.ActionSpawn), frame)
	assert.True(t, res.Spawned)
	assert.False(t, res.Moved)
	assert.Equal(t, before+1, g.Board().Len())
	assert.Equal(t, 0, res.State.Moves)
}

func TestStuckIsInformational(t *testing.T) {
	g := newTestGame(t, 1)
	setBoard(t, g, Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	assert.True(t, g.State().Stuck)
	assert.Equal(t, StateStuck, g.Snapshot().State)

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		res := g.Step(core.FrameOf(a), frame)
		assert.False(t, res.Moved)
	}

	res := g.Step(core.FrameOf(core.ActionRestart), frame)
	assert.False(t, res.State.Stuck)
}

func TestDeterministicGames(t *testing.T) {
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 12345}
	g1 := New(config.DefaultGameConfig())
	g2 := New(config.DefaultGameConfig())
	g1.Reset(cfg)
	g2.Reset(cfg)

	actions := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 200; i++ {
		in := core.FrameOf(actions[i%len(actions)])
		g1.Step(in, frame)
		g2.Step(in, frame)
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestAnimationSettlesAfterMove(t *testing.T) {
	g := newTestGame(t, 8)
	setBoard(t, g, Grid{{0, 0, 0, 2}})

	g.Step(core.FrameOf(core.ActionLeft), frame)
	assert.True(t, g.Animating())

	empty := core.NewInputFrame()
	for i := 0; i < 120 && g.Animating(); i++ {
		g.Step(empty, frame)
	}
	assert.False(t, g.Animating())
	for _, tile := range g.Board().Tiles() {
		assert.True(t, Settled(tile))
	}
}

func TestGameLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := New(config.DefaultGameConfig(), WithLogger(logger))
	g.Reset(core.RuntimeConfig{Seed: 3})
	setBoard(t, g, Grid{{2, 2, 0, 0}})
	g.Apply(DirLeft)

	assert.Contains(t, buf.String(), "moved")
	assert.Contains(t, buf.String(), "merged")
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, 77)
	setBoard(t, g, Grid{{2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 128}})

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, int64(77), snap.Seed)
	assert.Equal(t, 128, snap.MaxTile)
	assert.Equal(t, 2, snap.Tiles)
	assert.Equal(t, 128, snap.Board[3][3])

	g.Step(core.FrameOf(core.ActionQuit), frame)
	assert.Equal(t, StateQuit, g.Snapshot().State)
}
