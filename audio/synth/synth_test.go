package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSweepLength(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		duration float64
		want     int
	}{
		{"eat cue", 22050, 0.12, 2646},
		{"one second", 8000, 1, 8000},
		{"zero", 22050, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sweep(tt.rate, 880, 220, tt.duration, 0.5)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSweepStaysInVolume(t *testing.T) {
	volume := 0.5
	limit := int16(math.Round(volume*32767)) + 1
	for i, s := range Sweep(22050, 880, 220, 0.12, volume) {
		if s > limit || s < -limit {
			t.Fatalf("sample %d = %d exceeds volume limit %d", i, s, limit)
		}
	}
}

func TestAmbienceFadesAtSeam(t *testing.T) {
	samples := Ambience(8000, 1, 0.3, 0.02, rand.New(rand.NewSource(1)))
	if len(samples) != 8000 {
		t.Fatalf("len = %d, want 8000", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0", samples[0])
	}
	if samples[len(samples)-1] != 0 {
		t.Errorf("last sample = %d, want 0", samples[len(samples)-1])
	}

	nonZero := 0
	for _, s := range samples {
		if s != 0 {
			nonZero++
		}
	}
	if nonZero < len(samples)/2 {
		t.Errorf("only %d non-zero samples", nonZero)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	buf := Bytes([]int16{1, -2, 32767})
	if len(buf) != 6 {
		t.Fatalf("len = %d, want 6", len(buf))
	}
	if got := int16(binary.LittleEndian.Uint16(buf[2:])); got != -2 {
		t.Errorf("second sample = %d, want -2", got)
	}
	if buf[0] != 1 || buf[1] != 0 {
		t.Errorf("first sample bytes = %v, want [1 0]", buf[:2])
	}
}
