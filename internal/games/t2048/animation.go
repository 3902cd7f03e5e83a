package t2048

import "math"

// Animation defaults, in pixels and seconds.
const (
	DefaultVelocity     = 2750.0 // px/s a tile travels toward its cell
	DefaultGrowDivisor  = 7.0    // growth speed is Velocity/GrowDivisor
	DefaultSnapFraction = 0.25   // snap once within this fraction of a cell
)

// Animator eases a tile's drawn rectangle toward its logical cell. It never
// touches Row, Col or Value.
type Animator struct {
	Velocity     float64
	GrowDivisor  float64
	SnapFraction float64
}

// DefaultAnimator returns an animator with the stock tuning.
func DefaultAnimator() Animator {
	return Animator{
		Velocity:     DefaultVelocity,
		GrowDivisor:  DefaultGrowDivisor,
		SnapFraction: DefaultSnapFraction,
	}
}

// Animate advances t by dt seconds. A shrunken tile grows first, staying
// centred; a full-size tile then closes the horizontal gap and after that
// the vertical one.
func (a Animator) Animate(t *Tile, dt float64) {
	if t.W < CellW {
		step := a.Velocity * dt / a.GrowDivisor
		t.X -= step / 2
		t.Y -= step / 2
		t.W += step
		t.H += step
		return
	}
	t.W, t.H = CellW, CellH

	tx := float64(t.Col * CellW)
	ty := float64(t.Row * CellH)
	snap := CellW * a.SnapFraction
	step := a.Velocity * dt

	switch {
	case t.X > tx:
		t.X = approach(t.X, tx, -step, snap)
	case t.X < tx:
		t.X = approach(t.X, tx, step, snap)
	case t.Y > ty:
		t.Y = approach(t.Y, ty, -step, snap)
	case t.Y < ty:
		t.Y = approach(t.Y, ty, step, snap)
	}
}

// approach moves v by step toward target, landing on target once closer
// than snap or when the step would overshoot.
func approach(v, target, step, snap float64) float64 {
	d := math.Abs(target - v)
	if d < snap || d <= math.Abs(step) {
		return target
	}
	return v + step
}

// Settled reports whether t is drawn full size exactly over its cell.
func Settled(t *Tile) bool {
	return t.W == CellW && t.H == CellH &&
		t.X == float64(t.Col*CellW) && t.Y == float64(t.Row*CellH)
}
