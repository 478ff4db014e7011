package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/components"
)

// FishRenderer draws fish by variant, mirrored along their facing.
type FishRenderer struct{}

// NewFishRenderer creates a new fish renderer.
func NewFishRenderer() *FishRenderer {
	return &FishRenderer{}
}

// Draw renders one fish. The player gets an outline so it stays readable in a crowd.
func (r *FishRenderer) Draw(f components.FishEntity) {
	body := toRL(f.Color)
	cx := float32(f.X + f.Width/2)
	cy := float32(f.Y + f.Height/2)
	w := float32(f.Width)
	h := float32(f.Height)
	dir := float32(f.Facing.Sign())

	// Local coordinates: +x points where the fish faces.
	at := func(lx, ly float32) rl.Vector2 {
		return rl.Vector2{X: cx + lx*dir, Y: cy + ly}
	}

	switch f.Variant {
	case components.VariantRound:
		rl.DrawEllipse(int32(cx), int32(cy), w*0.38, h*0.55, body)
		triangle(at(-w*0.3, 0), at(-w*0.5, -h*0.4), at(-w*0.5, h*0.4), shade(body, 0.8))
	case components.VariantSlim:
		rl.DrawEllipse(int32(cx), int32(cy), w*0.45, h*0.3, body)
		triangle(at(-w*0.38, 0), at(-w*0.5, -h*0.35), at(-w*0.5, h*0.35), shade(body, 0.8))
	case components.VariantShark:
		fin := shade(body, 0.7)
		rl.DrawEllipse(int32(cx), int32(cy), w*0.44, h*0.36, body)
		triangle(at(-w*0.05, -h*0.3), at(w*0.12, -h*0.3), at(-w*0.12, -h*0.6), fin)
		triangle(at(-w*0.36, 0), at(-w*0.5, -h*0.5), at(-w*0.46, h*0.25), fin)
		rl.DrawLineEx(at(w*0.3, h*0.12), at(w*0.4, h*0.08), 1.5, shade(body, 0.4))
	case components.VariantPiranha:
		rl.DrawEllipse(int32(cx), int32(cy), w*0.4, h*0.48, body)
		triangle(at(-w*0.32, 0), at(-w*0.5, -h*0.4), at(-w*0.5, h*0.4), shade(body, 0.7))
		teeth := rl.RayWhite
		for i := float32(0); i < 3; i++ {
			x := w*0.22 + i*w*0.05
			triangle(at(x, h*0.1), at(x+w*0.04, h*0.1), at(x+w*0.02, h*0.2), teeth)
		}
	default:
		rl.DrawEllipse(int32(cx), int32(cy), w*0.4, h*0.42, body)
		triangle(at(-w*0.32, 0), at(-w*0.5, -h*0.45), at(-w*0.5, h*0.45), shade(body, 0.8))
	}

	// Eye
	eye := at(w*0.24, -h*0.1)
	eyeR := max(h*0.08, 1.5)
	rl.DrawCircleV(eye, eyeR, rl.RayWhite)
	rl.DrawCircleV(eye, eyeR*0.5, rl.Black)

	if f.Role == components.RolePlayer {
		rl.DrawEllipseLines(int32(cx), int32(cy), w*0.42, h*0.46, rl.Color{R: 255, G: 255, B: 255, A: 120})
	}
}

// DrawAll renders enemies first, then the player on top.
func (r *FishRenderer) DrawAll(player components.FishEntity, enemies []components.FishEntity) {
	for i := range enemies {
		r.Draw(enemies[i])
	}
	r.Draw(player)
}
