package components

// Role distinguishes the player from enemies.
type Role uint8

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns the role name.
func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "enemy"
}

// Fish bundles identity and presentation data.
type Fish struct {
	ID      uint32
	Role    Role
	Color   Color
	Variant Variant
	Removed bool // flagged for purge at the end of the tick
}

// FishEntity is a flat, copyable view of one fish, handed to renderers and tests.
type FishEntity struct {
	ID      uint32
	X, Y    float64
	Width   float64
	Height  float64
	Speed   float64
	Facing  Facing
	Color   Color
	Role    Role
	Variant Variant
}

// View flattens the components of one fish.
func View(pos Position, size Size, mot Motion, fish Fish) FishEntity {
	return FishEntity{
		ID:      fish.ID,
		X:       pos.X,
		Y:       pos.Y,
		Width:   size.W,
		Height:  size.H,
		Speed:   mot.Speed,
		Facing:  mot.Facing,
		Color:   fish.Color,
		Role:    fish.Role,
		Variant: fish.Variant,
	}
}

// Particle is an ambient bubble. It has no gameplay effect.
type Particle struct {
	ID      uint32
	X, Y    float64
	Size    float64
	Speed   float64 // upward, pixels per tick
	Opacity float64
}
