package game

import (
	"fmt"
	"log/slog"
)

// Audio plays game sounds. Implementations may fail or be missing; the
// simulation never depends on them.
type Audio interface {
	PlayEat()
	StartAmbience()
	StopAmbience()
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) PlayEat()       {}
func (NopAudio) StartAmbience() {}
func (NopAudio) StopAmbience()  {}

// SafeAudio wraps an Audio and swallows panics from it.
// The first failure is logged; later ones are silent.
type SafeAudio struct {
	inner  Audio
	failed bool
}

// NewSafeAudio wraps a. A nil a behaves like NopAudio.
func NewSafeAudio(a Audio) *SafeAudio {
	if a == nil {
		a = NopAudio{}
	}
	return &SafeAudio{inner: a}
}

// Failed reports whether the wrapped audio has panicked at least once.
func (s *SafeAudio) Failed() bool {
	return s.failed
}

func (s *SafeAudio) PlayEat()       { s.call("play_eat", s.inner.PlayEat) }
func (s *SafeAudio) StartAmbience() { s.call("start_ambience", s.inner.StartAmbience) }
func (s *SafeAudio) StopAmbience()  { s.call("stop_ambience", s.inner.StopAmbience) }

func (s *SafeAudio) call(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if !s.failed {
				slog.Warn("audio call failed", "call", name, "error", fmt.Sprint(r))
			}
			s.failed = true
		}
	}()
	fn()
}
