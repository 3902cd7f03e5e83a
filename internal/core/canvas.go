package core

// Canvas is the set of drawing primitives the game needs from a frontend.
// Coordinates are in board pixels; each frontend maps them onto its own
// surface (an ebiten image, or a character grid scaled down).
type Canvas interface {
	// Clear fills the whole board area with c.
	Clear(c Color)

	// FillRect fills the rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h float64, c Color)

	// StrokeRect draws the outline of a rectangle.
	StrokeRect(x, y, w, h, thickness float64, c Color)

	// Line draws a segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2, thickness float64, c Color)

	// Text draws s centred on (cx, cy). size is a pixel height hint.
	Text(s string, cx, cy, size float64, c Color)
}
