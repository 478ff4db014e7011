package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

// Collides reports whether two fish overlap. Each fish is approximated by a
// circle around its center; the contact distance is scale times the mean width.
func Collides(aPos components.Position, aSize components.Size, bPos components.Position, bSize components.Size, scale float64) bool {
	ax, ay := aSize.Center(aPos)
	bx, by := bSize.Center(bPos)
	dist := math.Hypot(ax-bx, ay-by)
	return dist < scale*(aSize.W+bSize.W)/2
}

// Contact is an enemy touching the player this tick.
type Contact struct {
	Entity ecs.Entity
	ID     uint32
	Width  float64
}

// DetectContacts returns every live enemy overlapping the player, ordered by ID.
func DetectContacts(p *Pond, scale float64) []Contact {
	ppos, psize, _, _ := p.Player()

	var contacts []Contact
	for _, e := range p.Enemies() {
		pos, size, _, fish := p.Get(e)
		if Collides(*ppos, *psize, *pos, *size, scale) {
			contacts = append(contacts, Contact{Entity: e, ID: fish.ID, Width: size.W})
		}
	}
	return contacts
}
