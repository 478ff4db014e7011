package systems

import (
	"github.com/pthm-cable/bigfish/components"
)

// Steer is the set of movement directions held this tick.
type Steer struct {
	Up, Down, Left, Right bool
}

// MovePlayer applies held directions to the player and clamps it inside the playfield.
// Opposite directions cancel. Left/right also set facing; holding both keeps the old facing.
func MovePlayer(pos *components.Position, size components.Size, mot *components.Motion, steer Steer, b Bounds) {
	var dx, dy float64
	if steer.Left {
		dx -= mot.Speed
	}
	if steer.Right {
		dx += mot.Speed
	}
	if steer.Up {
		dy -= mot.Speed
	}
	if steer.Down {
		dy += mot.Speed
	}

	if steer.Left && !steer.Right {
		mot.Facing = components.FacingLeft
	} else if steer.Right && !steer.Left {
		mot.Facing = components.FacingRight
	}

	pos.X = clamp(pos.X+dx, 0, b.Width-size.W)
	pos.Y = clamp(pos.Y+dy, 0, b.Height-size.H)
}

// AdvanceEnemies moves every enemy along its facing and flags the ones that
// swam past the far edge by more than margin. Flagged fish are purged later.
func AdvanceEnemies(p *Pond, b Bounds, margin float64) int {
	flagged := 0
	query := p.filter.Query()
	for query.Next() {
		pos, _, mot, fish := query.Get()
		if fish.Role != components.RoleEnemy || fish.Removed {
			continue
		}

		pos.X += mot.Facing.Sign() * mot.Speed

		if (mot.Facing == components.FacingRight && pos.X > b.Width+margin) ||
			(mot.Facing == components.FacingLeft && pos.X < -margin) {
			fish.Removed = true
			flagged++
		}
	}
	return flagged
}

// clamp limits v to [lo, hi]. When the entity is larger than the playfield, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
