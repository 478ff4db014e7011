package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

var testBounds = Bounds{Width: 1280, Height: 720}

// newTestPond returns a pond holding only a player of the given width, centered.
func newTestPond(playerWidth float64) *Pond {
	p := NewPond()
	size := components.NewSize(playerWidth)
	p.Add(
		components.Position{X: testBounds.Width/2 - size.W/2, Y: testBounds.Height/2 - size.H/2},
		size,
		components.Motion{Speed: 5},
		components.Fish{Role: components.RolePlayer, Color: components.PlayerColor},
	)
	return p
}

// addEnemy places an enemy with its top-left corner at (x, y).
func addEnemy(p *Pond, x, y, width float64, facing components.Facing, speed float64) ecs.Entity {
	return p.Add(
		components.Position{X: x, Y: y},
		components.NewSize(width),
		components.Motion{Speed: speed, Facing: facing},
		components.Fish{Role: components.RoleEnemy},
	)
}

// addEnemyOnPlayer places a motionless enemy centered on the player.
func addEnemyOnPlayer(p *Pond, width float64) ecs.Entity {
	ppos, psize, _, _ := p.Player()
	cx, cy := psize.Center(*ppos)
	size := components.NewSize(width)
	return addEnemy(p, cx-size.W/2, cy-size.H/2, width, components.FacingRight, 0)
}
