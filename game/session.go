package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/systems"
)

// Hooks are optional callbacks fired synchronously during Step.
type Hooks struct {
	OnSpawn    func(kind systems.SpawnKind)
	OnParticle func()
	OnEat      func(eat systems.Eat)
}

// StepResult summarizes one simulation tick.
type StepResult struct {
	Spawned    bool
	Kind       systems.SpawnKind
	Despawned  int
	Resolution systems.Resolution
}

// Session is the aggregate of one play-through: the pond with the player and
// enemies, ambient particles, spawn memory, score and the one-shot won flag.
type Session struct {
	cfg       *config.Config
	rng       systems.RNG
	pond      *systems.Pond
	spawner   *systems.Spawner
	particles *systems.ParticleSystem
	perf      *PerfStats

	bounds     systems.Bounds
	difficulty int
	score      int
	won        bool
	tick       int64
}

// NewSession creates a session and resets it at the configured difficulty.
func NewSession(cfg *config.Config, rng systems.RNG) *Session {
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		spawner:   systems.NewSpawner(cfg, rng),
		particles: systems.NewParticleSystem(cfg.Particles),
	}
	s.Reset(cfg.Game.Difficulty)
	return s
}

// SetPerf enables per-phase timing of Step.
func (s *Session) SetPerf(p *PerfStats) {
	s.perf = p
}

// Reset starts a fresh play-through. Difficulty is clamped to 1..max and the
// playfield size is read from config at this point.
func (s *Session) Reset(difficulty int) {
	maxDifficulty := s.cfg.Game.MaxDifficulty
	clamped := min(max(difficulty, 1), maxDifficulty)
	if clamped != difficulty {
		slog.Warn("difficulty out of range, clamped", "requested", difficulty, "difficulty", clamped)
	}

	s.difficulty = clamped
	s.bounds = systems.Bounds{
		Width:  float64(s.cfg.Screen.Width),
		Height: float64(s.cfg.Screen.Height),
	}
	s.score = 0
	s.won = false
	s.tick = 0

	s.pond = systems.NewPond()
	s.spawner.Reset()
	s.particles.Reset()

	size := components.NewSize(s.cfg.Player.InitialWidth)
	s.pond.Add(
		components.Position{
			X: (s.bounds.Width - size.W) / 2,
			Y: (s.bounds.Height - size.H) / 2,
		},
		size,
		components.Motion{Speed: s.cfg.Player.Speed, Facing: components.FacingRight},
		components.Fish{
			Role:    components.RolePlayer,
			Color:   components.PlayerColor,
			Variant: components.VariantClassic,
		},
	)
}

// Step advances the simulation by one tick: move the player, maybe spawn an
// enemy and a particle, advance everything, resolve contacts, purge.
func (s *Session) Step(nowMs float64, in Intents, hooks Hooks) StepResult {
	var res StepResult
	var start time.Time

	start = time.Now()
	pos, size, mot, _ := s.pond.Player()
	systems.MovePlayer(pos, *size, mot, in.Steer(), s.bounds)
	s.record(systems.PhaseMove, start)

	start = time.Now()
	if _, kind, ok := s.spawner.TrySpawn(s.pond, s.difficulty, s.bounds, nowMs); ok {
		res.Spawned = true
		res.Kind = kind
		if hooks.OnSpawn != nil {
			hooks.OnSpawn(kind)
		}
	}
	if s.particles.MaybeSpawn(s.rng, s.bounds) && hooks.OnParticle != nil {
		hooks.OnParticle()
	}
	s.record(systems.PhaseSpawn, start)

	start = time.Now()
	res.Despawned = systems.AdvanceEnemies(s.pond, s.bounds, s.cfg.Enemy.DespawnMargin)
	s.particles.Update()
	s.record(systems.PhaseAdvance, start)

	start = time.Now()
	contacts := systems.DetectContacts(s.pond, s.cfg.Game.HitboxScale)
	res.Resolution = systems.Resolve(s.pond, contacts, s.rules(), s.won, hooks.OnEat)
	s.score += res.Resolution.Points
	if res.Resolution.Win {
		s.won = true
	}
	// Growth can push the player past the edge; pull it back in.
	pos, size, mot, _ = s.pond.Player()
	systems.MovePlayer(pos, *size, mot, systems.Steer{}, s.bounds)
	s.record(systems.PhaseResolve, start)

	start = time.Now()
	s.pond.Purge()
	s.record(systems.PhasePurge, start)

	s.tick++
	return res
}

func (s *Session) rules() systems.Rules {
	return systems.Rules{
		Difficulty:    s.difficulty,
		MaxSize:       s.cfg.Game.MaxSize,
		GrowthFactor:  s.cfg.Game.GrowthFactor,
		PointsPerUnit: s.cfg.Game.PointsPerUnit,
	}
}

func (s *Session) record(phase string, start time.Time) {
	if s.perf != nil {
		s.perf.Record(phase, time.Since(start))
	}
}

// Pond returns the entity store. Tests use it to place fish directly.
func (s *Session) Pond() *systems.Pond { return s.pond }

// Bounds returns the playfield read at the last reset.
func (s *Session) Bounds() systems.Bounds { return s.bounds }

func (s *Session) Difficulty() int { return s.difficulty }
func (s *Session) Score() int      { return s.score }
func (s *Session) Won() bool       { return s.won }
func (s *Session) Tick() int64     { return s.tick }

// Particles returns the ambient particle system.
func (s *Session) Particles() *systems.ParticleSystem { return s.particles }

// EnemyWidths returns the widths of all live enemies.
func (s *Session) EnemyWidths() []float64 {
	views := s.pond.EnemyViews()
	out := make([]float64, len(views))
	for i, v := range views {
		out[i] = v.Width
	}
	return out
}
