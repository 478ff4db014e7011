package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

func TestPurgeRemovesEntities(t *testing.T) {
	p := newTestPond(40)

	var eaten []ecs.Entity
	for i := 0; i < 1000; i++ {
		e := addEnemy(p, float64(i), 100, 20, components.FacingRight, 1)
		_, _, _, fish := p.Get(e)
		fish.Removed = true
		eaten = append(eaten, e)

		if ids := p.Purge(); len(ids) != 1 {
			t.Fatalf("cycle %d: purged %d fish, want 1", i, len(ids))
		}
	}

	for i, e := range eaten {
		if p.Alive(e) {
			t.Fatalf("entity %d still alive after purge", i)
		}
	}

	query := p.filter.Query()
	count := 0
	for query.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("world holds %d fish after purges, want only the player", count)
	}
	if total, _ := p.Counts(p.PlayerWidth()); total != 0 {
		t.Errorf("enemies = %d, want 0", total)
	}
}

func TestPurgeKeepsPlayer(t *testing.T) {
	p := newTestPond(40)
	_, _, _, fish := p.Player()
	fish.Removed = true

	if ids := p.Purge(); len(ids) != 0 {
		t.Errorf("purged %v, player must never be purged", ids)
	}
	if w := p.PlayerWidth(); w != 40 {
		t.Errorf("player width = %v, want 40", w)
	}
}
