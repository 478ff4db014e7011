package game

import "github.com/pthm-cable/bigfish/components"

// Snapshot is a deep copy of the session state for renderers and the HUD.
// It shares no memory with the simulation.
type Snapshot struct {
	Status     Status
	Victory    bool
	Won        bool
	Difficulty int
	Score      int
	Tick       int64
	MaxSize    float64
	Width      float64
	Height     float64

	Player    components.FishEntity
	Enemies   []components.FishEntity
	Particles []components.Particle
}

// Sink receives a snapshot after every frame.
type Sink interface {
	Publish(Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Snapshot)

// Publish calls f(s).
func (f SinkFunc) Publish(s Snapshot) {
	f(s)
}
