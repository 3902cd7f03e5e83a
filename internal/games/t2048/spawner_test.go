package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnPlacesOneTileOnFreeCell(t *testing.T) {
	s := NewSpawner(7)
	for i := 0; i < 200; i++ {
		b := mustBoard(t, Grid{
			{2, 4, 0, 0},
			{0, 8, 0, 16},
			{0, 0, 0, 0},
			{2, 0, 0, 2},
		})
		before := b.Grid()

		tile, ok := s.Spawn(b)
		require.True(t, ok)
		assert.Equal(t, 0, before[tile.Row][tile.Col], "spawned on an occupied cell")
		assert.Contains(t, []int{2, 4}, tile.Value)
		assert.Equal(t, 7, b.Len())
		assertConsistent(t, b)
	}
}

func TestSpawnFourOdds(t *testing.T) {
	s := NewSpawner(1234)
	const trials = 90000
	fours := 0
	for i := 0; i < trials; i++ {
		b := NewBoard()
		tile, ok := s.Spawn(b)
		require.True(t, ok)
		if tile.Value == 4 {
			fours++
		}
	}
	ratio := float64(fours) / trials
	assert.InDelta(t, 1.0/9.0, ratio, 0.01)
}

func TestSpawnStartsShrunkAndCentred(t *testing.T) {
	s := NewSpawner(3)
	b := NewBoard()

	tile, ok := s.Spawn(b)
	require.True(t, ok)
	assert.Equal(t, CellW*DefaultSpawnScale, tile.W)
	assert.Equal(t, CellH*DefaultSpawnScale, tile.H)
	assert.Equal(t, float64(tile.Col*CellW)+CellW/4.0, tile.X)
	assert.Equal(t, float64(tile.Row*CellH)+CellH/4.0, tile.Y)
}

func TestSpawnFullBoardIsNoop(t *testing.T) {
	var g Grid
	for r := range Rows {
		for c := range Cols {
			g[r][c] = 2
		}
	}
	b := mustBoard(t, g)

	_, ok := NewSpawner(1).Spawn(b)
	assert.False(t, ok)
	assert.Equal(t, Rows*Cols, b.Len())
}

func TestSeedPlacesTwoTwos(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewBoard()
		NewSpawner(seed).Seed(b)

		require.Equal(t, 2, b.Len())
		tiles := b.Tiles()
		assert.NotEqual(t, tiles[0].Key(), tiles[1].Key())
		for _, tile := range tiles {
			assert.Equal(t, 2, tile.Value)
			assert.True(t, Settled(tile))
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	b1, b2 := NewBoard(), NewBoard()
	s1, s2 := NewSpawner(99), NewSpawner(99)
	for i := 0; i < 10; i++ {
		s1.Spawn(b1)
		s2.Spawn(b2)
	}
	assert.Equal(t, b1.Grid(), b2.Grid())
}
