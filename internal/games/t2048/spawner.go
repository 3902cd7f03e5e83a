package t2048

import (
	"math/rand"
	"time"
)

// Spawner defaults.
const (
	DefaultFourOdds   = 9   // one in FourOdds spawns is a 4
	DefaultSpawnScale = 0.5 // starting size of a spawned tile, as a fraction of a cell
)

// Spawner drops new tiles on free cells.
type Spawner struct {
	rng *rand.Rand

	FourOdds int
	Scale    float64
}

// NewSpawner returns a spawner seeded with seed, or with the clock when seed is 0.
func NewSpawner(seed int64) *Spawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		FourOdds: DefaultFourOdds,
		Scale:    DefaultSpawnScale,
	}
}

// Spawn places a 2 (or, one time in FourOdds, a 4) on a random free cell.
// The tile starts shrunk and centred on its cell. It reports false when the
// board is full.
func (s *Spawner) Spawn(b *Board) (*Tile, bool) {
	t, ok := s.place(b, s.value())
	if !ok {
		return nil, false
	}
	scale := s.Scale
	if scale <= 0 || scale > 1 {
		scale = DefaultSpawnScale
	}
	w := CellW * scale
	h := CellH * scale
	t.X = float64(t.Col*CellW) + (CellW-w)/2
	t.Y = float64(t.Row*CellH) + (CellH-h)/2
	t.W, t.H = w, h
	return t, true
}

// Seed places the two opening tiles, both 2s at full size.
func (s *Spawner) Seed(b *Board) {
	for range 2 {
		s.place(b, 2)
	}
}

func (s *Spawner) value() int {
	odds := s.FourOdds
	if odds < 1 {
		odds = DefaultFourOdds
	}
	if s.rng.Intn(odds) == 0 {
		return 4
	}
	return 2
}

// place rejection-samples cells until it finds a free one.
func (s *Spawner) place(b *Board, value int) (*Tile, bool) {
	if b.Full() {
		return nil, false
	}
	for {
		row, col := s.rng.Intn(Rows), s.rng.Intn(Cols)
		if b.Occupied(KeyOf(row, col)) {
			continue
		}
		t, err := b.Place(value, row, col)
		if err != nil {
			return nil, false
		}
		return t, true
	}
}
