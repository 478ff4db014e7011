package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Player.InitialWidth != 40 {
		t.Errorf("initial_width = %v, want 40", cfg.Player.InitialWidth)
	}
	if cfg.Spawner.MaxEnemies != 25 {
		t.Errorf("max_enemies = %d, want 25", cfg.Spawner.MaxEnemies)
	}
	if cfg.Game.MaxSize != 300 {
		t.Errorf("max_size = %v, want 300", cfg.Game.MaxSize)
	}
	if math.Abs(cfg.Derived.DTMs-1000.0/60) > 1e-9 {
		t.Errorf("DTMs = %v, want 16.67", cfg.Derived.DTMs)
	}
	if math.Abs(cfg.Derived.SpeedFactor-1280.0/1920) > 1e-9 {
		t.Errorf("SpeedFactor = %v, want %v", cfg.Derived.SpeedFactor, 1280.0/1920)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Spawner.MaxEnemies = 0
	if b := Default(); b.Spawner.MaxEnemies != 25 {
		t.Errorf("Default() shares state: max_enemies = %d", b.Spawner.MaxEnemies)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("game:\n  difficulty: 8\nscreen:\n  width: 1920\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Difficulty != 8 {
		t.Errorf("difficulty = %d, want 8", cfg.Game.Difficulty)
	}
	if cfg.Screen.Width != 1920 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1920x720 (height from defaults)", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.SpeedFactor != 1 {
		t.Errorf("SpeedFactor = %v, want 1", cfg.Derived.SpeedFactor)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "screen: [1, 2"},
		{"zero width", "screen:\n  width: 0\n"},
		{"zero fps", "screen:\n  target_fps: 0\n"},
		{"negative enemies", "spawner:\n  max_enemies: -1\n"},
		{"zero divisor", "spawner:\n  danger_divisor: 0\n"},
		{"zero player", "player:\n  initial_width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Game.Difficulty = 3

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Game.Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", loaded.Game.Difficulty)
	}
}

func TestCfgAfterInit(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Screen.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", Cfg().Screen.TargetFPS)
	}
}
