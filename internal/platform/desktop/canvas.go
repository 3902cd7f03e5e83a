package desktop

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// imageCanvas draws board pixels straight onto an ebiten image.
type imageCanvas struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func newImageCanvas() (*imageCanvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load font: %w", err)
	}
	return &imageCanvas{
		font:  src,
		faces: make(map[float64]*text.GoTextFace),
	}, nil
}

func (c *imageCanvas) Clear(bg core.Color) {
	c.dst.Fill(bg)
}

func (c *imageCanvas) FillRect(x, y, w, h float64, fill core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), fill, false)
}

func (c *imageCanvas) StrokeRect(x, y, w, h, thickness float64, stroke core.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(thickness), stroke, false)
}

func (c *imageCanvas) Line(x1, y1, x2, y2, thickness float64, stroke core.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), stroke, false)
}

func (c *imageCanvas) Text(s string, cx, cy, size float64, fg core.Color) {
	if size < 1 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(fg)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face(size), op)
}

// face returns a cached face for size, rounded to whole pixels.
func (c *imageCanvas) face(size float64) *text.GoTextFace {
	size = float64(int(size + 0.5))
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.font, Size: size}
	c.faces[size] = f
	return f
}
