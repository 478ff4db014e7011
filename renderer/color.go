// Package renderer draws the pond: water, bubbles and fish.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/components"
)

// toRL converts a palette color.
func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// shade scales the RGB channels by f, keeping alpha.
func shade(c rl.Color, f float32) rl.Color {
	scale := func(v uint8) uint8 {
		x := float32(v) * f
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// triangle draws a filled triangle regardless of winding.
// raylib culls triangles that are not counter-clockwise on screen.
func triangle(a, b, c rl.Vector2, col rl.Color) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, col)
}
