package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func drawBoard(t *testing.T, g t2048.Grid) *core.Screen {
	t.Helper()
	b, err := t2048.BoardFromGrid(g)
	require.NoError(t, err)

	screen := core.NewScreen(BoardWidth, BoardHeight)
	t2048.DrawBoard(&screenCanvas{screen: screen}, b, config.DefaultGameConfig().Theme.PaletteOrDefault())
	return screen
}

func TestCanvasGridLines(t *testing.T) {
	screen := drawBoard(t, t2048.Grid{})

	want := "┌────────┬────────┬────────┬────────┐"
	assert.Equal(t, want, screen.Row(0))
	assert.Equal(t, "├────────┼────────┼────────┼────────┤", screen.Row(cellLines))
	assert.Equal(t, "└────────┴────────┴────────┴────────┘", screen.Row(BoardHeight-1))
	assert.Equal(t, "│        │        │        │        │", screen.Row(1))
}

func TestCanvasTiles(t *testing.T) {
	screen := drawBoard(t, t2048.Grid{
		{2, 0, 0, 2048},
		{0, 16, 0, 0},
	})
	palette := config.DefaultGameConfig().Theme.PaletteOrDefault()

	assert.Equal(t, "│    2   │        │        │  2048  │", screen.Row(2))
	assert.True(t, strings.Contains(screen.Row(6), "16"))

	// Tile interior takes the tile colour, borders keep the board colour.
	assert.Equal(t, palette.TileColor(2), screen.GetCell(1, 1).BG)
	assert.Equal(t, palette.TileColor(2), screen.GetCell(8, 3).BG)
	assert.Equal(t, palette.Background, screen.GetCell(0, 1).BG)
	assert.Equal(t, palette.Outline, screen.GetCell(0, 1).FG)
	assert.Equal(t, palette.Background, screen.GetCell(10, 1).BG)

	assert.Equal(t, palette.TextColor(2048), screen.GetCell(30, 2).FG)
	assert.Equal(t, palette.TileColor(2048), screen.GetCell(30, 2).BG)
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ab")
	assert.Equal(t, "ab  ", RenderScreen(s))

	s.FillBG(core.NewRect(2, 0, 2, 1), core.RGB(1, 2, 3))
	out := RenderScreen(s)
	assert.True(t, strings.HasPrefix(out, "ab"))
	assert.Contains(t, out, "  ")
}
