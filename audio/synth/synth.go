// Package synth generates the game's sound effects as 16-bit mono PCM.
package synth

import (
	"encoding/binary"
	"math"
)

// Sweep renders a sine whose frequency slides linearly from startHz to endHz
// over durationSec, with a linear fade out so the cue ends without a click.
func Sweep(sampleRate int, startHz, endHz, durationSec, volume float64) []int16 {
	n := int(math.Round(float64(sampleRate) * durationSec))
	if n <= 0 {
		return nil
	}

	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		freq := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := 1 - t
		out[i] = toPCM(math.Sin(phase) * env * volume)
	}
	return out
}

// Noise is the random source for Ambience.
type Noise interface {
	Float64() float64
}

// Ambience renders low-passed white noise for a looping underwater hum.
// smooth is the one-pole filter coefficient in (0, 1]; smaller is darker.
// The first and last samples are faded to keep the loop seam quiet.
func Ambience(sampleRate int, durationSec, volume, smooth float64, rng Noise) []int16 {
	n := int(math.Round(float64(sampleRate) * durationSec))
	if n <= 0 {
		return nil
	}
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}

	fade := sampleRate / 20
	if fade > n/2 {
		fade = n / 2
	}

	// The lowpass loses amplitude roughly with sqrt(smooth); compensate so
	// volume stays meaningful across coefficients.
	gain := volume / math.Sqrt(smooth)

	out := make([]int16, n)
	y := 0.0
	for i := range out {
		x := rng.Float64()*2 - 1
		y += smooth * (x - y)

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if i >= n-fade {
			env = float64(n-1-i) / float64(fade)
		}
		out[i] = toPCM(y * gain * env)
	}
	return out
}

// Bytes encodes samples as little-endian 16-bit PCM.
func Bytes(samples []int16) []byte {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	return buf
}

func toPCM(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
