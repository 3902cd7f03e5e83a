package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := t2048.New(config.DefaultGameConfig())
	m := NewModel(game, core.RuntimeConfig{TickRate: 60, Seed: 11}, nil)
	require.NotNil(t, m.Init())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelAppliesKeysOnTick(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	before := m.game.Board().Len()
	m, _ = update(t, m, runeKey("k"))
	assert.Equal(t, before, m.game.Board().Len(), "input waits for the next tick")

	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.game.Board().Len())
	assert.Equal(t, before+1, m.gameState.Tiles)
	assert.True(t, m.inputFrame.Empty())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newTestModel(t)
	before := m.game.Board().Grid()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})
	assert.Equal(t, before, m.game.Board().Grid())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "2048")
	assert.Contains(t, view, "moves 0")
	assert.Contains(t, view, "restart")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.True(t, m.TooSmall())
	assert.Contains(t, m.View(), "too small")
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := m.help.View(m.keys.Keys())

	m, _ = update(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
	full := m.help.View(m.keys.Keys())
	assert.True(t, strings.Contains(full, "spawn tile"))
	assert.False(t, strings.Contains(short, "spawn tile"))
}
