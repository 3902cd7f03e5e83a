package core

import (
	"strings"
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color

	line int // box-drawing directions already drawn here
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the board to be
// drawn with simple cell operations while the platform handles display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear resets every cell to an uncoloured space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position, keeping the cell's colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].line = 0
}

// SetFG changes the foreground colour of a cell.
func (s *Screen) SetFG(x, y int, c Color) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x].FG = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.Bounds().Contains(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextColored writes a string and sets its foreground colour.
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
		s.SetFG(x+i, y, fg)
	}
}

// FillBG paints the background of every cell in r and blanks its runes.
func (s *Screen) FillBG(r Rect, bg Color) {
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !s.Bounds().Contains(x, y) {
				continue
			}
			s.cells[y][x] = Cell{Rune: ' ', BG: bg}
		}
	}
}

// Line segment directions, combined into a mask per cell so crossing lines
// render as proper junctions.
const (
	lineUp = 1 << iota
	lineDown
	lineLeft
	lineRight
)

var junctions = map[int]rune{
	lineLeft | lineRight:                     '─',
	lineUp | lineDown:                        '│',
	lineDown | lineRight:                     '┌',
	lineDown | lineLeft:                      '┐',
	lineUp | lineRight:                       '└',
	lineUp | lineLeft:                        '┘',
	lineUp | lineDown | lineRight:            '├',
	lineUp | lineDown | lineLeft:             '┤',
	lineDown | lineLeft | lineRight:          '┬',
	lineUp | lineLeft | lineRight:            '┴',
	lineUp | lineDown | lineLeft | lineRight: '┼',
}

func (s *Screen) addLine(x, y, mask int, fg Color) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	mask |= s.cells[y][x].line
	r, ok := junctions[mask]
	if !ok {
		if mask&(lineLeft|lineRight) != 0 {
			r = '─'
		} else {
			r = '│'
		}
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
	s.cells[y][x].line = mask
}

// DrawHLine draws a horizontal line from (x, y) with the given length,
// joining any lines it crosses.
func (s *Screen) DrawHLine(x, y, length int, fg Color) {
	for i := 0; i < length; i++ {
		mask := 0
		if i > 0 {
			mask |= lineLeft
		}
		if i < length-1 {
			mask |= lineRight
		}
		if length == 1 {
			mask = lineLeft | lineRight
		}
		s.addLine(x+i, y, mask, fg)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length,
// joining any lines it crosses.
func (s *Screen) DrawVLine(x, y, length int, fg Color) {
	for i := 0; i < length; i++ {
		mask := 0
		if i > 0 {
			mask |= lineUp
		}
		if i < length-1 {
			mask |= lineDown
		}
		if length == 1 {
			mask = lineUp | lineDown
		}
		s.addLine(x, y+i, mask, fg)
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, fg Color) {
	s.DrawHLine(r.X, r.Y, r.W, fg)
	s.DrawHLine(r.X, r.Bottom()-1, r.W, fg)
	s.DrawVLine(r.X, r.Y, r.H, fg)
	s.DrawVLine(r.Right()-1, r.Y, r.H, fg)
}

// String converts the screen buffer to a plain string without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
