package systems

// RNG is the randomness seam for every spawn and cosmetic roll.
// Both *math/rand.Rand and *golang.org/x/exp/rand.Rand satisfy it.
type RNG interface {
	Float64() float64
}

// SeqRNG replays a fixed sequence of values in [0,1), cycling when exhausted.
// Tests and replays use it to pin spawn outcomes.
type SeqRNG struct {
	vals []float64
	next int
}

// NewSeqRNG creates a sequence source. An empty sequence always yields 0.
func NewSeqRNG(vals ...float64) *SeqRNG {
	return &SeqRNG{vals: vals}
}

// Float64 returns the next value in the sequence.
func (s *SeqRNG) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

// Drawn returns how many values have been consumed.
func (s *SeqRNG) Drawn() int {
	return s.next
}

// between returns a uniform value in [lo, hi).
func between(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pick returns a uniformly chosen element of items.
func pick[T any](rng RNG, items []T) T {
	idx := int(rng.Float64() * float64(len(items)))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return items[idx]
}
