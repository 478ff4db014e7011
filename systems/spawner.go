package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/config"
)

// SpawnKind classifies a spawned enemy relative to the player at spawn time.
type SpawnKind uint8

const (
	SpawnFood SpawnKind = iota
	SpawnDangerous
)

// String returns "food" or "dangerous".
func (k SpawnKind) String() string {
	if k == SpawnDangerous {
		return "dangerous"
	}
	return "food"
}

// Bounds is the playfield size in pixels.
type Bounds struct {
	Width, Height float64
}

// Spawner decides when and what enemies enter the playfield.
//
// Random draws per spawn, in order: danger roll, size factor, variant, color,
// side, vertical position, speed jitter.
type Spawner struct {
	cfg         *config.Config
	rng         RNG
	lastSpawnMs float64
}

// NewSpawner creates a spawner.
func NewSpawner(cfg *config.Config, rng RNG) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset forgets the last spawn time.
func (s *Spawner) Reset() {
	s.lastSpawnMs = 0
}

// LastSpawnMs returns the timestamp of the last interval pass.
func (s *Spawner) LastSpawnMs() float64 {
	return s.lastSpawnMs
}

// Interval returns the minimum gap between spawn attempts in milliseconds.
func (s *Spawner) Interval(difficulty int) float64 {
	sc := s.cfg.Spawner
	return math.Max(sc.MinIntervalMs, sc.BaseIntervalMs-float64(difficulty)*sc.IntervalStepMs)
}

// DangerCap returns how many enemies wider than the player may be alive at once.
func (s *Spawner) DangerCap(difficulty int) int {
	sc := s.cfg.Spawner
	return sc.DangerBase + difficulty/sc.DangerDivisor
}

// DangerChance returns the probability of rolling a dangerous enemy.
func (s *Spawner) DangerChance(difficulty int) float64 {
	sc := s.cfg.Spawner
	return sc.DangerChanceBase + float64(difficulty)*sc.DangerChanceStep
}

// TrySpawn adds at most one enemy to the pond.
// At capacity it is a no-op; otherwise once the interval has elapsed the gate
// timestamp is reset whether or not anything is added.
func (s *Spawner) TrySpawn(p *Pond, difficulty int, b Bounds, nowMs float64) (ecs.Entity, SpawnKind, bool) {
	playerWidth := p.PlayerWidth()
	total, dangerous := p.Counts(playerWidth)
	if total >= s.cfg.Spawner.MaxEnemies {
		return ecs.Entity{}, SpawnFood, false
	}

	if nowMs-s.lastSpawnMs <= s.Interval(difficulty) {
		return ecs.Entity{}, SpawnFood, false
	}
	s.lastSpawnMs = nowMs

	ec := s.cfg.Enemy
	roll := s.rng.Float64()
	factor := s.rng.Float64()

	var width float64
	var variant components.Variant
	kind := SpawnFood
	if roll < s.DangerChance(difficulty) && dangerous < s.DangerCap(difficulty) {
		kind = SpawnDangerous
		width = playerWidth * (ec.DangerMinScale + factor*ec.DangerScaleSpan)
		variant = pick(s.rng, components.AggressiveVariants)
	} else {
		width = math.Max(ec.FoodMinWidth, playerWidth*(ec.FoodMinScale+factor*ec.FoodScaleSpan))
		variant = pick(s.rng, components.HarmlessVariants)
	}

	color := pick(s.rng, components.EnemyPalette)

	sc := s.cfg.Spawner
	facing := components.FacingRight
	x := -sc.EntryOffset
	if s.rng.Float64() >= 0.5 {
		facing = components.FacingLeft
		x = b.Width + sc.EntryOffset
	}
	y := sc.VerticalMargin + s.rng.Float64()*(b.Height-2*sc.VerticalMargin)

	speed := (ec.BaseSpeed + float64(difficulty)*ec.SpeedPerLevel + s.rng.Float64()*ec.SpeedJitter) * (b.Width / sc.ReferenceWidth)

	e := p.Add(
		components.Position{X: x, Y: y},
		components.NewSize(width),
		components.Motion{Speed: speed, Facing: facing},
		components.Fish{Role: components.RoleEnemy, Color: color, Variant: variant},
	)
	return e, kind, true
}
