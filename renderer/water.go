package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaterBackground renders a vertical water gradient with drifting light shafts.
type WaterBackground struct {
	width  float32
	height float32
	top    rl.Color
	bottom rl.Color
	shafts int
}

// NewWaterBackground creates a new water background renderer.
func NewWaterBackground(width, height int32) *WaterBackground {
	return &WaterBackground{
		width:  float32(width),
		height: float32(height),
		top:    rl.Color{R: 40, G: 130, B: 190, A: 255},
		bottom: rl.Color{R: 8, G: 30, B: 70, A: 255},
		shafts: 6,
	}
}

// Draw renders the background. time is in seconds.
func (w *WaterBackground) Draw(time float32) {
	rl.DrawRectangleGradientV(0, 0, int32(w.width), int32(w.height), w.top, w.bottom)

	spacing := w.width / float32(w.shafts)
	for i := 0; i < w.shafts; i++ {
		fi := float32(i)
		sway := float32(math.Sin(float64(time*0.3+fi*1.7))) * spacing * 0.25
		x := spacing*(fi+0.5) + sway
		topHalf := spacing * 0.12
		bottomHalf := spacing * 0.45
		slant := spacing * 0.6

		alpha := uint8(18 + 10*math.Sin(float64(time*0.5+fi)))
		col := rl.Color{R: 220, G: 240, B: 255, A: alpha}

		a := rl.Vector2{X: x - topHalf, Y: 0}
		b := rl.Vector2{X: x + topHalf, Y: 0}
		c := rl.Vector2{X: x + slant + bottomHalf, Y: w.height}
		d := rl.Vector2{X: x + slant - bottomHalf, Y: w.height}
		triangle(a, d, c, col)
		triangle(a, c, b, col)
	}

	// Surface shimmer
	for x := float32(0); x < w.width; x += 24 {
		y := 6 + 3*float32(math.Sin(float64(x*0.05+time*2)))
		rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: x + 14, Y: y}, 2, rl.Color{R: 255, G: 255, B: 255, A: 40})
	}
}
