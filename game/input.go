package game

import "github.com/pthm-cable/bigfish/systems"

// Intents is the set of player inputs for one frame.
// Directions are held state; PauseToggle is an edge and fires once per press.
type Intents uint8

const (
	IntentUp Intents = 1 << iota
	IntentDown
	IntentLeft
	IntentRight
	IntentPauseToggle
)

// Has reports whether every bit in f is set.
func (i Intents) Has(f Intents) bool {
	return i&f == f
}

// Steer converts the held directions into a steering input.
func (i Intents) Steer() systems.Steer {
	return systems.Steer{
		Up:    i.Has(IntentUp),
		Down:  i.Has(IntentDown),
		Left:  i.Has(IntentLeft),
		Right: i.Has(IntentRight),
	}
}
