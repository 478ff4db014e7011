package systems

import (
	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/config"
)

// ParticleSystem manages ambient bubbles rising through the playfield.
type ParticleSystem struct {
	Particles []components.Particle
	cfg       config.ParticlesConfig
	nextID    uint32
}

// NewParticleSystem creates a new particle system.
func NewParticleSystem(cfg config.ParticlesConfig) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]components.Particle, 0, cfg.MaxCount),
		cfg:       cfg,
		nextID:    1,
	}
}

// Reset removes all particles.
func (s *ParticleSystem) Reset() {
	s.Particles = s.Particles[:0]
}

// MaybeSpawn adds one bubble below the bottom edge with SpawnChance probability.
// Draws, in order: chance roll, x, size, speed, opacity.
func (s *ParticleSystem) MaybeSpawn(rng RNG, b Bounds) bool {
	if s.cfg.SpawnChance <= 0 {
		return false
	}
	if rng.Float64() >= s.cfg.SpawnChance {
		return false
	}
	if s.cfg.MaxCount > 0 && len(s.Particles) >= s.cfg.MaxCount {
		return false
	}

	x := rng.Float64() * b.Width
	size := between(rng, s.cfg.MinSize, s.cfg.MaxSize)
	s.Particles = append(s.Particles, components.Particle{
		ID:      s.nextID,
		X:       x,
		Y:       b.Height + size,
		Size:    size,
		Speed:   between(rng, s.cfg.MinSpeed, s.cfg.MaxSpeed),
		Opacity: between(rng, s.cfg.MinOpacity, s.cfg.MaxOpacity),
	})
	s.nextID++
	return true
}

// Update moves every particle up and drops the ones past the top boundary.
func (s *ParticleSystem) Update() int {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Y -= p.Speed
		if p.Y < s.cfg.RemoveAbove {
			continue
		}
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	removed := len(s.Particles) - alive
	s.Particles = s.Particles[:alive]
	return removed
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Snapshot returns a copy of the particles.
func (s *ParticleSystem) Snapshot() []components.Particle {
	out := make([]components.Particle, len(s.Particles))
	copy(out, s.Particles)
	return out
}
