package systems

import (
	"math"
	"testing"
)

var testRules = Rules{Difficulty: 1, MaxSize: 300, GrowthFactor: 0.1, PointsPerUnit: 10}

func TestResolveEat(t *testing.T) {
	p := newTestPond(40)
	e := addEnemyOnPlayer(p, 20)

	var cues int
	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, func(Eat) { cues++ })

	if res.Death {
		t.Fatal("player died eating a smaller fish")
	}
	if len(res.Eats) != 1 || cues != 1 {
		t.Fatalf("eats = %d, cues = %d, want 1 each", len(res.Eats), cues)
	}
	if math.Abs(p.PlayerWidth()-42) > 1e-9 {
		t.Errorf("player width = %v, want 42", p.PlayerWidth())
	}
	_, size, _, _ := p.Player()
	if math.Abs(size.H-42*0.6) > 1e-9 {
		t.Errorf("player height = %v, want %v", size.H, 42*0.6)
	}
	if res.Points != 200 {
		t.Errorf("points = %d, want 200", res.Points)
	}

	_, _, _, fish := p.Get(e)
	if !fish.Removed {
		t.Error("eaten enemy not flagged for removal")
	}
	if res.Win {
		t.Error("win fired below the threshold")
	}
}

func TestResolveEqualWidthIsEaten(t *testing.T) {
	p := newTestPond(40)
	addEnemyOnPlayer(p, 40)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)
	if res.Death || len(res.Eats) != 1 {
		t.Errorf("equal width: death=%v eats=%d, want an eat", res.Death, len(res.Eats))
	}
}

func TestResolveDeath(t *testing.T) {
	p := newTestPond(40)
	e := addEnemyOnPlayer(p, 80)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)

	if !res.Death {
		t.Fatal("expected death against a wider fish")
	}
	_, _, _, fish := p.Get(e)
	if res.KilledBy != fish.ID {
		t.Errorf("killedBy = %d, want %d", res.KilledBy, fish.ID)
	}
	if res.Points != 0 {
		t.Errorf("points = %d, want 0", res.Points)
	}
	if p.PlayerWidth() != 40 {
		t.Errorf("player width = %v, want unchanged 40", p.PlayerWidth())
	}
}

func TestResolveStopsAtFirstDeath(t *testing.T) {
	p := newTestPond(40)
	first := addEnemyOnPlayer(p, 20)
	addEnemyOnPlayer(p, 80)
	last := addEnemyOnPlayer(p, 10)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)

	if !res.Death {
		t.Fatal("expected death")
	}
	if len(res.Eats) != 1 {
		t.Errorf("eats = %d, want 1 (only the fish before the killer)", len(res.Eats))
	}
	if _, _, _, fish := p.Get(first); !fish.Removed {
		t.Error("fish eaten before the death not flagged")
	}
	if _, _, _, fish := p.Get(last); fish.Removed {
		t.Error("fish after the death was evaluated")
	}
}

func TestResolveGrowthCanFlipLaterContact(t *testing.T) {
	// 40 eats 40 -> 44, which is now wide enough to eat the 42 that follows.
	p := newTestPond(40)
	addEnemyOnPlayer(p, 40)
	addEnemyOnPlayer(p, 42)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)
	if res.Death {
		t.Fatal("growth from the first eat should apply to the second contact")
	}
	if len(res.Eats) != 2 {
		t.Errorf("eats = %d, want 2", len(res.Eats))
	}
}

func TestResolveWinFiresOnce(t *testing.T) {
	p := newTestPond(295)
	addEnemyOnPlayer(p, 50)
	addEnemyOnPlayer(p, 20)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)
	if !res.Win {
		t.Fatal("expected win at width >= 300")
	}
	if p.PlayerWidth() < 300 {
		t.Errorf("player width = %v, want >= 300", p.PlayerWidth())
	}
	p.Purge()

	addEnemyOnPlayer(p, 30)
	again := Resolve(p, DetectContacts(p, 0.6), testRules, true, nil)
	if again.Win {
		t.Error("win fired again after the flag was set")
	}
	if len(again.Eats) != 1 {
		t.Errorf("eats after win = %d, want 1", len(again.Eats))
	}
}

func TestResolveWinThenDeathSameTick(t *testing.T) {
	p := newTestPond(295)
	addEnemyOnPlayer(p, 50)
	addEnemyOnPlayer(p, 400)

	res := Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)
	if !res.Win || !res.Death {
		t.Errorf("win=%v death=%v, want both reported", res.Win, res.Death)
	}
}

func TestResolveGrowthIsMonotonic(t *testing.T) {
	widths := []float64{15, 22.5, 31, 40}
	p := newTestPond(40)
	prev := p.PlayerWidth()
	for _, w := range widths {
		addEnemyOnPlayer(p, w)
		Resolve(p, DetectContacts(p, 0.6), testRules, false, nil)
		p.Purge()

		got := p.PlayerWidth()
		if math.Abs(got-(prev+0.1*w)) > 1e-9 {
			t.Errorf("after eating %v: width = %v, want %v", w, got, prev+0.1*w)
		}
		prev = got
	}
}

func TestRulesPoints(t *testing.T) {
	tests := []struct {
		rules Rules
		width float64
		want  int
	}{
		{Rules{Difficulty: 1, PointsPerUnit: 10}, 20, 200},
		{Rules{Difficulty: 3, PointsPerUnit: 10}, 15.55, 466},
		{Rules{Difficulty: 10, PointsPerUnit: 10}, 33.333, 3333},
	}
	for _, tt := range tests {
		if got := tt.rules.Points(tt.width); got != tt.want {
			t.Errorf("Points(%v) at difficulty %d = %d, want %d", tt.width, tt.rules.Difficulty, got, tt.want)
		}
	}
}
