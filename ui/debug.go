package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/systems"
)

// PerfSource provides per-phase tick timings.
type PerfSource interface {
	Avg(phase string) time.Duration
	Total() time.Duration
	SortedNames() []string
}

// PerfPanel renders the tick phase performance panel.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32, registry *systems.SystemRegistry) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		registry: registry,
		x:        x,
		y:        y,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(perf PerfSource, fps int32, enemies, particles int) {
	x, y := p.x, p.y
	p.renderer.DrawPanel(x-6, y-6, 230, 130)

	rl.DrawText(fmt.Sprintf("FPS: %d | fish: %d | bubbles: %d", fps, enemies, particles), x, y, 12, rl.White)
	y += 16

	total := perf.Total()
	rl.DrawText(fmt.Sprintf("Tick: %s", total.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 16

	for _, name := range perf.SortedNames() {
		avg := perf.Avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}

		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", p.registry.GetName(name), avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// DrawHitboxes outlines the collision circle of every fish. Enemies wider
// than the player are red.
func DrawHitboxes(player components.FishEntity, enemies []components.FishEntity, scale float64) {
	draw := func(f components.FishEntity, col rl.Color) {
		cx := int32(f.X + f.Width/2)
		cy := int32(f.Y + f.Height/2)
		// Two fish collide when their centers are closer than the sum of these radii.
		rl.DrawCircleLines(cx, cy, float32(scale*f.Width/2), col)
	}

	for _, e := range enemies {
		col := rl.Green
		if e.Width > player.Width {
			col = rl.Red
		}
		draw(e, col)
	}
	draw(player, rl.Yellow)
}
