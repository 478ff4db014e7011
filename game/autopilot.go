package game

import (
	"math"

	"github.com/pthm-cable/bigfish/components"
)

// Autopilot steering parameters.
const (
	threatRadiusScale = 4.0 // flee from wider fish within this many combined half-widths
	steerDeadzone     = 4.0 // px; smaller offsets are ignored to avoid jitter
)

// Autopilot picks held directions for a headless run: flee the closest wider
// fish in range, otherwise chase the closest edible one.
func Autopilot(s Snapshot) Intents {
	px, py := center(s.Player)

	var fleeX, fleeY float64
	fleeing := false
	bestFood := math.Inf(1)
	var chaseX, chaseY float64

	for _, e := range s.Enemies {
		ex, ey := center(e)
		dx, dy := ex-px, ey-py
		dist := math.Hypot(dx, dy)

		if e.Width > s.Player.Width {
			radius := threatRadiusScale * (e.Width + s.Player.Width) / 2
			if dist < radius && dist > 0 {
				// Closer threats push harder.
				w := (radius - dist) / radius
				fleeX -= dx / dist * w
				fleeY -= dy / dist * w
				fleeing = true
			}
			continue
		}

		if dist < bestFood {
			bestFood = dist
			chaseX, chaseY = dx, dy
		}
	}

	if fleeing {
		return steerToward(fleeX*100, fleeY*100)
	}
	if !math.IsInf(bestFood, 1) {
		return steerToward(chaseX, chaseY)
	}
	// Drift back to the middle while the pond is empty.
	return steerToward(s.Width/2-px, s.Height/2-py)
}

func center(f components.FishEntity) (float64, float64) {
	return f.X + f.Width/2, f.Y + f.Height/2
}

func steerToward(dx, dy float64) Intents {
	var in Intents
	if dx > steerDeadzone {
		in |= IntentRight
	} else if dx < -steerDeadzone {
		in |= IntentLeft
	}
	if dy > steerDeadzone {
		in |= IntentDown
	} else if dy < -steerDeadzone {
		in |= IntentUp
	}
	return in
}
