// Package audio plays the game's synthesized sounds through the raylib audio device.
package audio

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"github.com/pthm-cable/bigfish/audio/synth"
	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
)

// Player owns the audio device and the two generated sounds.
type Player struct {
	eat      rl.Sound
	ambience rl.Sound
	looping  bool
}

// New opens the audio device and renders the sounds. When audio is disabled
// or the device cannot be opened it returns a silent game.NopAudio.
func New(cfg config.AudioConfig) game.Audio {
	if !cfg.Enabled {
		return game.NopAudio{}
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio device unavailable, continuing without sound")
		return game.NopAudio{}
	}
	rl.SetMasterVolume(float32(cfg.MasterVolume))

	eat := synth.Sweep(cfg.SampleRate, cfg.EatStartHz, cfg.EatEndHz, cfg.EatDurationSec, 0.8)
	amb := synth.Ambience(cfg.SampleRate, cfg.AmbienceSec, cfg.AmbienceVolume, cfg.AmbienceSmooth,
		rand.New(rand.NewSource(1)))

	p := &Player{
		eat:      load(cfg.SampleRate, eat),
		ambience: load(cfg.SampleRate, amb),
	}
	slog.Info("audio ready", "sample_rate", cfg.SampleRate, "eat_samples", len(eat), "ambience_samples", len(amb))
	return p
}

func load(sampleRate int, samples []int16) rl.Sound {
	wave := rl.NewWave(uint32(len(samples)), uint32(sampleRate), 16, 1, synth.Bytes(samples))
	return rl.LoadSoundFromWave(wave)
}

// PlayEat plays the eat cue. Overlapping eats restart it.
func (p *Player) PlayEat() {
	rl.PlaySound(p.eat)
}

// StartAmbience starts the ambience loop.
func (p *Player) StartAmbience() {
	p.looping = true
	if !rl.IsSoundPlaying(p.ambience) {
		rl.PlaySound(p.ambience)
	}
}

// StopAmbience stops the ambience loop.
func (p *Player) StopAmbience() {
	p.looping = false
	rl.StopSound(p.ambience)
}

// Update restarts the ambience when it runs out. Call once per frame.
func (p *Player) Update() {
	if p.looping && !rl.IsSoundPlaying(p.ambience) {
		rl.PlaySound(p.ambience)
	}
}

// Close releases the sounds and the device.
func (p *Player) Close() {
	rl.UnloadSound(p.eat)
	rl.UnloadSound(p.ambience)
	rl.CloseAudioDevice()
}
