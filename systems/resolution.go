package systems

import (
	"math"
)

// Rules holds the scoring and growth parameters for one session.
type Rules struct {
	Difficulty    int
	MaxSize       float64
	GrowthFactor  float64
	PointsPerUnit float64
}

// Points returns the score awarded for eating an enemy of the given width.
func (r Rules) Points(width float64) int {
	return int(math.Floor(width * r.PointsPerUnit * float64(r.Difficulty)))
}

// Eat records one enemy eaten by the player.
type Eat struct {
	ID          uint32
	Width       float64
	Points      int
	PlayerWidth float64 // player width after growing
}

// Resolution is the outcome of resolving one tick's contacts.
type Resolution struct {
	Eats     []Eat
	Points   int
	Win      bool   // the win threshold was crossed for the first time
	Death    bool   // the player touched a wider enemy
	KilledBy uint32 // ID of the enemy that killed the player
}

// Resolve applies eat/die outcomes for contacts in the order given (ascending ID
// from DetectContacts). Evaluation stops at the first lethal contact; eats
// before it stand. alreadyWon suppresses the win so it fires once per session.
// onEat, if non-nil, is called synchronously for every eat.
func Resolve(p *Pond, contacts []Contact, rules Rules, alreadyWon bool, onEat func(Eat)) Resolution {
	var res Resolution
	_, psize, _, _ := p.Player()

	for _, c := range contacts {
		if psize.W < c.Width {
			res.Death = true
			res.KilledBy = c.ID
			break
		}

		_, _, _, fish := p.Get(c.Entity)
		fish.Removed = true

		psize.Grow(c.Width * rules.GrowthFactor)
		eat := Eat{
			ID:          c.ID,
			Width:       c.Width,
			Points:      rules.Points(c.Width),
			PlayerWidth: psize.W,
		}
		res.Eats = append(res.Eats, eat)
		res.Points += eat.Points

		if onEat != nil {
			onEat(eat)
		}

		if psize.W >= rules.MaxSize && !alreadyWon && !res.Win {
			res.Win = true
		}
	}

	return res
}
