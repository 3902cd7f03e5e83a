// Package t2048 implements the 2048 sliding-tile puzzle: a sparse board of
// keyed tiles, the slide/merge resolver, the random spawner and the cosmetic
// animator that eases tiles toward their cells.
package t2048

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"
)

// Grid and window geometry. The grid size is fixed at compile time.
const (
	Rows = 4
	Cols = 4

	WindowSize       = 600
	CellW            = WindowSize / Cols
	CellH            = WindowSize / Rows
	OutlineThickness = 10
)

// Board errors.
var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrOccupied     = errors.New("cell already occupied")
	ErrInvalidValue = errors.New("tile value must be a power of two >= 2")
	ErrBoardFull    = errors.New("board is full")
)

// Key packs a grid coordinate into a single integer.
type Key int

// KeyOf returns the key for (row, col).
func KeyOf(row, col int) Key {
	return Key(row*Cols + col)
}

// Row returns the row encoded in k.
func (k Key) Row() int { return int(k) / Cols }

// Col returns the column encoded in k.
func (k Key) Col() int { return int(k) % Cols }

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.Row(), k.Col())
}

// InBounds reports whether (row, col) lies on the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Tile is a numbered tile. Row/Col are its logical cell; X/Y/W/H is where it
// is currently drawn.
type Tile struct {
	Value    int
	Row, Col int

	X, Y, W, H float64

	merged bool
	frozen bool
	dead   bool
}

// Key returns the tile's current cell key.
func (t *Tile) Key() Key { return KeyOf(t.Row, t.Col) }

// Merged reports whether the tile absorbed another tile in the current resolution.
func (t *Tile) Merged() bool { return t.merged }

// Frozen reports whether the tile can no longer move in the current resolution.
func (t *Tile) Frozen() bool { return t.frozen }

// Dead reports whether the tile was absorbed and awaits removal.
func (t *Tile) Dead() bool { return t.dead }

// Settle places the tile at full size exactly over its cell.
func (t *Tile) Settle() {
	t.X = float64(t.Col * CellW)
	t.Y = float64(t.Row * CellH)
	t.W = CellW
	t.H = CellH
}

func (t *Tile) resetFlags() {
	t.merged = false
	t.frozen = false
}

// Grid is a dense view of the board; 0 marks an empty cell.
type Grid [Rows][Cols]int

// Board holds the live tiles in insertion order plus an index from cell key
// to tile. Every position change goes through relocate so the two never
// disagree.
type Board struct {
	tiles []*Tile
	index *intmap.Map[Key, *Tile]
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		tiles: make([]*Tile, 0, Rows*Cols),
		index: intmap.New[Key, *Tile](Rows * Cols),
	}
}

// BoardFromGrid builds a board from a dense grid, row by row.
func BoardFromGrid(g Grid) (*Board, error) {
	b := NewBoard()
	for r := range Rows {
		for c := range Cols {
			if g[r][c] == 0 {
				continue
			}
			if _, err := b.Place(g[r][c], r, c); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Place inserts a full-size tile with the given value at (row, col).
func (b *Board) Place(value, row, col int) (*Tile, error) {
	if b.Full() {
		return nil, ErrBoardFull
	}
	if !InBounds(row, col) {
		return nil, fmt.Errorf("place (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if !validValue(value) {
		return nil, fmt.Errorf("place %d at (%d,%d): %w", value, row, col, ErrInvalidValue)
	}
	k := KeyOf(row, col)
	if b.index.Has(k) {
		return nil, fmt.Errorf("place (%d,%d): %w", row, col, ErrOccupied)
	}

	t := &Tile{Value: value, Row: row, Col: col}
	t.Settle()
	b.tiles = append(b.tiles, t)
	b.index.Put(k, t)
	return t, nil
}

func validValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// At returns the tile at (row, col), if any.
func (b *Board) At(row, col int) (*Tile, bool) {
	if !InBounds(row, col) {
		return nil, false
	}
	return b.index.Get(KeyOf(row, col))
}

// Get returns the tile stored under k, if any.
func (b *Board) Get(k Key) (*Tile, bool) {
	return b.index.Get(k)
}

// Occupied reports whether a live tile sits at k.
func (b *Board) Occupied(k Key) bool {
	return b.index.Has(k)
}

// Tiles returns the tiles in insertion order. Dead tiles stay in the list
// until RemoveDead. The slice is shared with the board.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// Len returns the number of tiles in the list.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Full reports whether every cell is taken.
func (b *Board) Full() bool {
	return b.index.Len() >= Rows*Cols
}

// relocate moves t to (row, col), re-keying it in the index.
func (b *Board) relocate(t *Tile, row, col int) {
	if cur, ok := b.index.Get(t.Key()); ok && cur == t {
		b.index.Del(t.Key())
	}
	t.Row, t.Col = row, col
	if !t.dead {
		b.index.Put(t.Key(), t)
	}
}

// absorb marks t dead and takes it off the index. It stays in the tile list
// so the caller can still move it onto its target for drawing.
func (b *Board) absorb(t *Tile) {
	if cur, ok := b.index.Get(t.Key()); ok && cur == t {
		b.index.Del(t.Key())
	}
	t.dead = true
	t.frozen = true
}

// RemoveDead drops dead tiles from the list and returns how many went.
func (b *Board) RemoveDead() int {
	kept := b.tiles[:0]
	for _, t := range b.tiles {
		if !t.dead {
			kept = append(kept, t)
		}
	}
	removed := len(b.tiles) - len(kept)
	clear(b.tiles[len(kept):])
	b.tiles = kept
	return removed
}

// Grid returns the dense value grid.
func (b *Board) Grid() Grid {
	var g Grid
	for _, t := range b.tiles {
		if !t.dead {
			g[t.Row][t.Col] = t.Value
		}
	}
	return g
}

// Clone returns a deep copy of the board, cosmetic state included.
func (b *Board) Clone() *Board {
	c := NewBoard()
	for _, t := range b.tiles {
		cp := *t
		c.tiles = append(c.tiles, &cp)
		if !cp.dead {
			c.index.Put(cp.Key(), &cp)
		}
	}
	return c
}

// MaxTile returns the highest value on the board, 0 when empty.
func (b *Board) MaxTile() int {
	best := 0
	for _, t := range b.tiles {
		if !t.dead && t.Value > best {
			best = t.Value
		}
	}
	return best
}

// EmptyCells returns the free cells in row-major order.
func (b *Board) EmptyCells() []Key {
	cells := make([]Key, 0, Rows*Cols-b.index.Len())
	for k := Key(0); k < Rows*Cols; k++ {
		if !b.index.Has(k) {
			cells = append(cells, k)
		}
	}
	return cells
}

// String renders the grid as rows of right-aligned numbers, "." for empty.
func (b *Board) String() string {
	g := b.Grid()
	var sb strings.Builder
	for r := range Rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
			} else {
				fmt.Fprintf(&sb, "%5d", g[r][c])
			}
		}
	}
	return sb.String()
}
