package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/config"
)

// quietConfig returns defaults with random enemy and particle spawns disabled,
// so tests control every fish in the pond.
func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Spawner.MaxEnemies = 0
	cfg.Particles.SpawnChance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, opts Options) *Game {
	t.Helper()
	g, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

// placeOnPlayer adds a stationary enemy centered on the player.
func placeOnPlayer(s *Session, width float64) ecs.Entity {
	pos, size, _, _ := s.Pond().Player()
	cx, cy := size.Center(*pos)
	es := components.NewSize(width)
	return s.Pond().Add(
		components.Position{X: cx - es.W/2, Y: cy - es.H/2},
		es,
		components.Motion{Speed: 0, Facing: components.FacingRight},
		components.Fish{Role: components.RoleEnemy, Variant: components.VariantClassic},
	)
}

// placeAway adds a moving enemy far from the centered player.
func placeAway(s *Session, width, speed float64) ecs.Entity {
	return s.Pond().Add(
		components.Position{X: 10, Y: 10},
		components.NewSize(width),
		components.Motion{Speed: speed, Facing: components.FacingRight},
		components.Fish{Role: components.RoleEnemy, Variant: components.VariantRound},
	)
}

func setPlayerWidth(s *Session, width float64) {
	_, size, _, _ := s.Pond().Player()
	*size = components.NewSize(width)
}

type recordingAudio struct {
	eats, starts, stops int
}

func (a *recordingAudio) PlayEat()       { a.eats++ }
func (a *recordingAudio) StartAmbience() { a.starts++ }
func (a *recordingAudio) StopAmbience()  { a.stops++ }

type panickingAudio struct{}

func (panickingAudio) PlayEat()       { panic("no audio device") }
func (panickingAudio) StartAmbience() { panic("no audio device") }
func (panickingAudio) StopAmbience()  { panic("no audio device") }
