package systems

import (
	"testing"

	"github.com/pthm-cable/bigfish/config"
)

func TestParticleSpawnChance(t *testing.T) {
	cfg := config.Default().Particles

	s := NewParticleSystem(cfg)
	if s.MaybeSpawn(NewSeqRNG(0.05), testBounds) {
		t.Error("roll at the chance boundary should not spawn")
	}

	// roll, x, size, speed, opacity
	if !s.MaybeSpawn(NewSeqRNG(0.01, 0.5, 0.0, 0.0, 0.0), testBounds) {
		t.Fatal("expected a spawn")
	}
	p := s.Particles[0]
	if p.X != 640 {
		t.Errorf("x = %v, want 640", p.X)
	}
	if p.Y <= testBounds.Height {
		t.Errorf("y = %v, want below the bottom edge", p.Y)
	}
	if p.Speed != cfg.MinSpeed || p.Opacity != cfg.MinOpacity {
		t.Errorf("speed/opacity = %v/%v, want minimums", p.Speed, p.Opacity)
	}
}

func TestParticleSpawnDisabled(t *testing.T) {
	cfg := config.Default().Particles
	cfg.SpawnChance = 0
	rng := NewSeqRNG(0.0)

	s := NewParticleSystem(cfg)
	if s.MaybeSpawn(rng, testBounds) {
		t.Error("spawned with zero chance")
	}
	if rng.Drawn() != 0 {
		t.Error("disabled spawner consumed randomness")
	}
}

func TestParticleUpdateRemovesPastTop(t *testing.T) {
	cfg := config.Default().Particles
	s := NewParticleSystem(cfg)
	rng := NewSeqRNG(0.0, 0.5, 0.5, 1.0, 0.5)
	for i := 0; i < 3; i++ {
		s.MaybeSpawn(rng, testBounds)
	}
	if s.Count() != 3 {
		t.Fatalf("count = %d, want 3", s.Count())
	}

	s.Particles[0].Y = -49
	s.Particles[0].Speed = 0.5 // -49.5 stays
	s.Particles[1].Y = -49
	s.Particles[1].Speed = 2 // -51 goes

	removed := s.Update()
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}
	for _, p := range s.Particles {
		if p.Y < cfg.RemoveAbove {
			t.Errorf("particle %d at y=%v survived", p.ID, p.Y)
		}
	}
}

func TestParticleSpawnUncappedByDefault(t *testing.T) {
	s := NewParticleSystem(config.Default().Particles)
	for i := 0; i < 200; i++ {
		if !s.MaybeSpawn(NewSeqRNG(0.01, 0.5, 0.5, 0.5, 0.5), testBounds) {
			t.Fatalf("spawn %d refused with a winning roll", i+1)
		}
	}
	if s.Count() != 200 {
		t.Errorf("count = %d, want 200", s.Count())
	}
}

func TestParticleSpawnOptionalCap(t *testing.T) {
	cfg := config.Default().Particles
	cfg.MaxCount = 3

	s := NewParticleSystem(cfg)
	for i := 0; i < 5; i++ {
		s.MaybeSpawn(NewSeqRNG(0.01, 0.5, 0.5, 0.5, 0.5), testBounds)
	}
	if s.Count() != 3 {
		t.Errorf("count = %d, want 3", s.Count())
	}
}
