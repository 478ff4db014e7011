package components

// HeightRatio fixes every fish's height to this fraction of its width.
const HeightRatio = 0.6

// Position is the top-left corner of an entity in playfield pixels.
type Position struct {
	X, Y float64
}

// Size holds a fish's bounding box. Construct with NewSize so H stays derived from W.
type Size struct {
	W, H float64
}

// NewSize returns a size with height derived from width.
func NewSize(w float64) Size {
	return Size{W: w, H: w * HeightRatio}
}

// Grow widens the size by dw and re-derives the height.
func (s *Size) Grow(dw float64) {
	s.W += dw
	s.H = s.W * HeightRatio
}

// Center returns the center point of a box at pos with this size.
func (s Size) Center(pos Position) (float64, float64) {
	return pos.X + s.W/2, pos.Y + s.H/2
}

// Facing is the horizontal direction a fish is drawn and moves in.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Motion holds scalar speed and facing. Enemies move along Facing every tick.
type Motion struct {
	Speed  float64
	Facing Facing
}
