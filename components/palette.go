package components

// Color is an RGBA color, kept independent of any rendering backend.
type Color struct {
	R, G, B, A uint8
}

// PlayerColor is reserved for the player fish.
var PlayerColor = Color{R: 255, G: 165, B: 0, A: 255}

// EnemyPalette is the fixed set of enemy colors.
var EnemyPalette = []Color{
	{R: 231, G: 76, B: 60, A: 255},
	{R: 52, G: 152, B: 219, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
	{R: 46, G: 204, B: 113, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 230, G: 126, B: 34, A: 255},
	{R: 26, G: 188, B: 156, A: 255},
}

// Variant is a cosmetic body shape.
type Variant uint8

const (
	VariantClassic Variant = iota
	VariantRound
	VariantSlim
	VariantShark
	VariantPiranha
)

// HarmlessVariants are drawn for food enemies.
var HarmlessVariants = []Variant{VariantClassic, VariantRound, VariantSlim}

// AggressiveVariants are drawn for dangerous enemies.
var AggressiveVariants = []Variant{VariantShark, VariantPiranha}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantRound:
		return "round"
	case VariantSlim:
		return "slim"
	case VariantShark:
		return "shark"
	case VariantPiranha:
		return "piranha"
	}
	return "unknown"
}

// Aggressive reports whether the variant is one of the danger-flavored shapes.
func (v Variant) Aggressive() bool {
	return v == VariantShark || v == VariantPiranha
}
