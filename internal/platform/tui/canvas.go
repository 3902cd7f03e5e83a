package tui

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Terminal board geometry: each cell is cellChars wide and cellLines tall
// including one shared border line.
const (
	cellChars = 9
	cellLines = 4

	BoardWidth  = t2048.Cols*cellChars + 1
	BoardHeight = t2048.Rows*cellLines + 1
)

// screenCanvas draws board pixels onto a character screen, scaled so the
// board fills a BoardWidth x BoardHeight block at (originX, originY).
type screenCanvas struct {
	screen  *core.Screen
	originX int
	originY int
}

func (c *screenCanvas) col(x float64) int {
	return c.originX + int(math.Round(x*float64(BoardWidth-1)/t2048.WindowSize))
}

func (c *screenCanvas) row(y float64) int {
	return c.originY + int(math.Round(y*float64(BoardHeight-1)/t2048.WindowSize))
}

// Clear paints the board area.
func (c *screenCanvas) Clear(bg core.Color) {
	c.screen.FillBG(core.NewRect(c.originX, c.originY, BoardWidth, BoardHeight), bg)
}

// FillRect paints the cells strictly inside the rectangle's border lines.
func (c *screenCanvas) FillRect(x, y, w, h float64, bg core.Color) {
	x0, y0 := c.col(x)+1, c.row(y)+1
	x1, y1 := c.col(x+w), c.row(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.FillBG(core.NewRect(x0, y0, x1-x0, y1-y0), bg)
}

// StrokeRect draws a box; thickness is ignored.
func (c *screenCanvas) StrokeRect(x, y, w, h, _ float64, fg core.Color) {
	x0, y0 := c.col(x), c.row(y)
	c.screen.DrawBox(core.NewRect(x0, y0, c.col(x+w)-x0+1, c.row(y+h)-y0+1), fg)
}

// Line draws a horizontal or vertical line; thickness is ignored.
func (c *screenCanvas) Line(x1, y1, x2, y2, _ float64, fg core.Color) {
	cx1, cy1 := c.col(math.Min(x1, x2)), c.row(math.Min(y1, y2))
	cx2, cy2 := c.col(math.Max(x1, x2)), c.row(math.Max(y1, y2))
	switch {
	case cy1 == cy2:
		c.screen.DrawHLine(cx1, cy1, cx2-cx1+1, fg)
	case cx1 == cx2:
		c.screen.DrawVLine(cx1, cy1, cy2-cy1+1, fg)
	}
}

// Text centres s on the cell nearest (cx, cy); size is ignored.
func (c *screenCanvas) Text(s string, cx, cy, _ float64, fg core.Color) {
	n := len([]rune(s))
	x := c.col(cx) - n/2
	c.screen.DrawTextColored(x, c.row(cy), s, fg)
}
