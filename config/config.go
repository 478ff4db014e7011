// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Game      GameConfig      `yaml:"game"`
	Player    PlayerConfig    `yaml:"player"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Particles ParticlesConfig `yaml:"particles"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Width and Height are also the playfield size.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GameConfig holds session-level rules.
type GameConfig struct {
	Difficulty    int     `yaml:"difficulty"`      // 1-10, clamped at session reset
	MaxDifficulty int     `yaml:"max_difficulty"`  // upper clamp bound
	MaxSize       float64 `yaml:"max_size"`        // player width that triggers the win
	PointsPerUnit float64 `yaml:"points_per_unit"` // points = floor(width * this * difficulty)
	GrowthFactor  float64 `yaml:"growth_factor"`   // width gained per eaten width unit
	HitboxScale   float64 `yaml:"hitbox_scale"`    // collision radius scale on mean width
}

// PlayerConfig holds player fish parameters.
type PlayerConfig struct {
	InitialWidth float64 `yaml:"initial_width"`
	Speed        float64 `yaml:"speed"` // pixels per tick, not difficulty-scaled
}

// SpawnerConfig holds enemy spawn policy parameters.
type SpawnerConfig struct {
	MaxEnemies       int     `yaml:"max_enemies"`
	DangerBase       int     `yaml:"danger_base"` // dangerous cap = base + difficulty/divisor
	DangerDivisor    int     `yaml:"danger_divisor"`
	BaseIntervalMs   float64 `yaml:"base_interval_ms"` // interval = max(min, base - difficulty*step)
	IntervalStepMs   float64 `yaml:"interval_step_ms"`
	MinIntervalMs    float64 `yaml:"min_interval_ms"`
	DangerChanceBase float64 `yaml:"danger_chance_base"` // p = base + difficulty*step
	DangerChanceStep float64 `yaml:"danger_chance_step"`
	EntryOffset      float64 `yaml:"entry_offset"`    // px beyond the edge
	VerticalMargin   float64 `yaml:"vertical_margin"` // px from top/bottom
	ReferenceWidth   float64 `yaml:"reference_width"` // speed normalization
}

// EnemyConfig holds enemy sizing and motion parameters.
type EnemyConfig struct {
	DangerMinScale  float64 `yaml:"danger_min_scale"`
	DangerScaleSpan float64 `yaml:"danger_scale_span"`
	FoodMinScale    float64 `yaml:"food_min_scale"`
	FoodScaleSpan   float64 `yaml:"food_scale_span"`
	FoodMinWidth    float64 `yaml:"food_min_width"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	SpeedJitter     float64 `yaml:"speed_jitter"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// ParticlesConfig holds ambient bubble parameters.
type ParticlesConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // per tick
	MaxCount    int     `yaml:"max_count"`    // 0 = unlimited
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinOpacity  float64 `yaml:"min_opacity"`
	MaxOpacity  float64 `yaml:"max_opacity"`
	RemoveAbove float64 `yaml:"remove_above"` // removed once y < this
}

// AudioConfig holds synthesized sound parameters.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SampleRate     int     `yaml:"sample_rate"`
	MasterVolume   float64 `yaml:"master_volume"`
	EatStartHz     float64 `yaml:"eat_start_hz"`
	EatEndHz       float64 `yaml:"eat_end_hz"`
	EatDurationSec float64 `yaml:"eat_duration_sec"`
	AmbienceSec    float64 `yaml:"ambience_sec"`
	AmbienceVolume float64 `yaml:"ambience_volume"`
	AmbienceSmooth float64 `yaml:"ambience_smooth"` // one-pole lowpass coefficient
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of simulated time per window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DTMs        float64 // milliseconds per tick at TargetFPS
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	SpeedFactor float64 // Screen.Width / Spawner.ReferenceWidth
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Spawner.MaxEnemies < 0 {
		return fmt.Errorf("spawner.max_enemies must not be negative, got %d", c.Spawner.MaxEnemies)
	}
	if c.Spawner.DangerDivisor <= 0 {
		return fmt.Errorf("spawner.danger_divisor must be positive, got %d", c.Spawner.DangerDivisor)
	}
	if c.Player.InitialWidth <= 0 {
		return fmt.Errorf("player.initial_width must be positive, got %v", c.Player.InitialWidth)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DTMs = 1000.0 / float64(c.Screen.TargetFPS)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Spawner.ReferenceWidth <= 0 {
		c.Spawner.ReferenceWidth = 1920
	}
	c.Derived.SpeedFactor = float64(c.Screen.Width) / c.Spawner.ReferenceWidth

	if c.Game.MaxDifficulty <= 0 {
		c.Game.MaxDifficulty = 10
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
