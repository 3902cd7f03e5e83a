package t2048

import (
	"slices"
)

// Merge records one tile absorbing another.
type Merge struct {
	From  Key // cell the absorbed tile came from
	Into  Key // cell of the surviving tile
	Value int // value after doubling
}

// Resolution describes what a move did.
type Resolution struct {
	Moved   bool
	Slides  int // single-cell relocations
	Merges  []Merge
	Passes  int
	Bounded bool // stopped by the pass limit instead of settling
}

// Move slides every tile toward dir and reports whether anything moved or merged.
func Move(b *Board, dir Direction) bool {
	return Resolve(b, dir).Moved
}

// Resolve slides and merges every tile toward dir.
//
// Tiles are visited nearest-edge-first. Each pass reads occupancy from a
// snapshot taken at the start of the pass, so every tile in a pass sees the
// same board. Passes repeat until every live tile is frozen or a pass changes
// nothing. A tile only merges into a frozen target, which keeps a tile from
// joining a neighbour that is itself still about to move or merge.
func Resolve(b *Board, dir Direction) Resolution {
	var res Resolution
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return res
	}

	order := slices.Clone(b.tiles)
	for {
		sortNearestEdge(order, dir)
		snap := occupancy(b)
		res.Passes++
		progress := false

		for _, t := range order {
			if advance(b, t, dr, dc, &snap, &res) {
				progress = true
			}
		}

		if allFrozen(order) || !progress {
			break
		}
		if res.Passes > len(order) {
			res.Bounded = true
			break
		}
	}

	b.RemoveDead()
	for _, t := range b.tiles {
		t.resetFlags()
	}
	res.Moved = res.Slides > 0 || len(res.Merges) > 0
	return res
}

// advance runs one tile as far as it can go this pass. It returns true if
// the tile moved, merged or froze.
func advance(b *Board, t *Tile, dr, dc int, snap *Grid, res *Resolution) bool {
	changed := false
	for {
		if t.dead || t.merged || t.frozen {
			return changed
		}
		nr, nc := t.Row+dr, t.Col+dc
		if !InBounds(nr, nc) {
			t.frozen = true
			return true
		}

		next := KeyOf(nr, nc)
		if snap[nr][nc] == 0 && !b.Occupied(next) {
			b.relocate(t, nr, nc)
			res.Slides++
			changed = true
			continue
		}

		target, ok := b.Get(next)
		if !ok {
			// Vacated after the snapshot; look again next pass.
			return changed
		}
		if !target.frozen {
			return changed
		}
		if target.Value == t.Value && !target.merged {
			from := t.Key()
			b.absorb(t)
			b.relocate(t, nr, nc)
			target.Value *= 2
			target.merged = true
			res.Merges = append(res.Merges, Merge{From: from, Into: next, Value: target.Value})
			return true
		}
		t.frozen = true
		return true
	}
}

// occupancy snapshots the live tile values.
func occupancy(b *Board) Grid {
	return b.Grid()
}

func allFrozen(tiles []*Tile) bool {
	for _, t := range tiles {
		if !t.dead && !t.frozen {
			return false
		}
	}
	return true
}

// sortNearestEdge orders tiles so the ones closest to the destination edge
// come first. The sort is stable so ties keep their previous order.
func sortNearestEdge(tiles []*Tile, dir Direction) {
	var rank func(t *Tile) int
	switch dir {
	case DirUp:
		rank = func(t *Tile) int { return t.Row }
	case DirDown:
		rank = func(t *Tile) int { return -t.Row }
	case DirLeft:
		rank = func(t *Tile) int { return t.Col }
	default:
		rank = func(t *Tile) int { return -t.Col }
	}
	slices.SortStableFunc(tiles, func(a, b *Tile) int {
		return rank(a) - rank(b)
	})
}
