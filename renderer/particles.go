package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/components"
)

// ParticleRenderer renders ambient bubbles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders all particles as translucent rings with a highlight.
func (r *ParticleRenderer) Draw(particles []components.Particle) {
	for i := range particles {
		p := &particles[i]
		alpha := uint8(p.Opacity * 255)
		center := rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
		radius := float32(p.Size) / 2

		rl.DrawCircleV(center, radius, rl.Color{R: 200, G: 230, B: 255, A: alpha / 3})
		rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rl.Color{R: 220, G: 240, B: 255, A: alpha})

		hl := rl.Vector2{X: center.X - radius*0.35, Y: center.Y - radius*0.35}
		rl.DrawCircleV(hl, max(radius*0.2, 0.5), rl.Color{R: 255, G: 255, B: 255, A: alpha})
	}
}
