package systems

import (
	"testing"

	"github.com/pthm-cable/bigfish/components"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		aPos components.Position
		aW   float64
		bPos components.Position
		bW   float64
		want bool
	}{
		// Centers (20,12) and (20,12)
		{"same spot", components.Position{X: 0, Y: 0}, 40, components.Position{X: 0, Y: 0}, 40, true},
		// Threshold 0.6*(40+40)/2 = 24; centers 23 apart
		{"just inside", components.Position{X: 0, Y: 0}, 40, components.Position{X: 23, Y: 0}, 40, true},
		{"exactly at threshold", components.Position{X: 0, Y: 0}, 40, components.Position{X: 24, Y: 0}, 40, false},
		{"apart", components.Position{X: 0, Y: 0}, 40, components.Position{X: 100, Y: 0}, 40, false},
		// Bounding boxes overlap but the scaled hitbox does not
		{"boxes overlap only", components.Position{X: 0, Y: 0}, 40, components.Position{X: 35, Y: 0}, 40, false},
		// Threshold 0.6*(40+20)/2 = 18; centers (20,12) and (40,6) are ~20.9 apart
		{"mixed sizes apart", components.Position{X: 0, Y: 0}, 40, components.Position{X: 30, Y: 0}, 20, false},
		{"mixed sizes touching", components.Position{X: 0, Y: 0}, 40, components.Position{X: 20, Y: 6}, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aSize := components.NewSize(tt.aW)
			bSize := components.NewSize(tt.bW)
			if got := Collides(tt.aPos, aSize, tt.bPos, bSize, 0.6); got != tt.want {
				t.Errorf("Collides = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.bPos, bSize, tt.aPos, aSize, 0.6); got != tt.want {
				t.Errorf("Collides (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectContactsOrderedByID(t *testing.T) {
	p := newTestPond(40)
	first := addEnemyOnPlayer(p, 10)
	addEnemy(p, 0, 0, 10, components.FacingRight, 0) // far away
	third := addEnemyOnPlayer(p, 30)

	contacts := DetectContacts(p, 0.6)
	if len(contacts) != 2 {
		t.Fatalf("contacts = %d, want 2", len(contacts))
	}
	if contacts[0].Entity != first || contacts[1].Entity != third {
		t.Errorf("contacts out of spawn order: %+v", contacts)
	}
	if contacts[0].ID >= contacts[1].ID {
		t.Errorf("IDs not ascending: %d, %d", contacts[0].ID, contacts[1].ID)
	}
}

func TestDetectContactsSkipsRemoved(t *testing.T) {
	p := newTestPond(40)
	e := addEnemyOnPlayer(p, 10)
	_, _, _, fish := p.Get(e)
	fish.Removed = true

	if contacts := DetectContacts(p, 0.6); len(contacts) != 0 {
		t.Errorf("contacts = %d, want 0 for a flagged enemy", len(contacts))
	}
}
