package t2048

import (
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// TextSize is the pixel height of tile numbers.
const TextSize = 42

// Draw renders the board onto dst: background, tiles, inner grid lines and
// the outer outline, in that order.
func (g *Game) Draw(dst core.Canvas) {
	DrawBoard(dst, g.board, g.palette)
}

// DrawBoard renders b with the given palette.
func DrawBoard(dst core.Canvas, b *Board, p config.Palette) {
	dst.Clear(p.Background)

	for _, t := range b.Tiles() {
		if t.Dead() {
			continue
		}
		dst.FillRect(t.X, t.Y, t.W, t.H, p.TileColor(t.Value))
		dst.Text(strconv.Itoa(t.Value), t.X+t.W/2, t.Y+t.H/2, TextSize*t.W/CellW, p.TextColor(t.Value))
	}

	for r := 1; r < Rows; r++ {
		y := float64(r * CellH)
		dst.Line(0, y, WindowSize, y, OutlineThickness, p.Outline)
	}
	for c := 1; c < Cols; c++ {
		x := float64(c * CellW)
		dst.Line(x, 0, x, WindowSize, OutlineThickness, p.Outline)
	}

	dst.StrokeRect(0, 0, WindowSize, WindowSize, 2*OutlineThickness, p.Outline)
}
