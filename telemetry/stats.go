package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Difficulty  int     `csv:"difficulty"`
	Score       int     `csv:"score"`
	PlayerWidth float64 `csv:"player_width"`
	Enemies     int     `csv:"enemies"`
	Dangerous   int     `csv:"dangerous"`
	Particles   int     `csv:"particles"`

	// Events during window
	FoodSpawns     int `csv:"food_spawns"`
	DangerSpawns   int `csv:"danger_spawns"`
	ParticleSpawns int `csv:"particle_spawns"`
	Eats           int `csv:"eats"`
	Deaths         int `csv:"deaths"`
	Wins           int `csv:"wins"`
	Points         int `csv:"points"`

	// Width distributions
	EatenWidthMean float64 `csv:"eaten_width_mean"`
	EnemyWidthMean float64 `csv:"enemy_width_mean"`
	EnemyWidthP50  float64 `csv:"enemy_width_p50"`
	EnemyWidthP90  float64 `csv:"enemy_width_p90"`
	EnemyWidthMax  float64 `csv:"enemy_width_max"`
}

// ComputeWidthStats calculates mean, empirical p50/p90 and max of widths.
// Returns zeros for an empty slice.
func ComputeWidthStats(values []float64) (mean, p50, p90, maxWidth float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	maxWidth = floats.Max(sorted)

	return mean, p50, p90, maxWidth
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("difficulty", s.Difficulty),
		slog.Int("score", s.Score),
		slog.Float64("player_width", s.PlayerWidth),
		slog.Int("enemies", s.Enemies),
		slog.Int("dangerous", s.Dangerous),
		slog.Int("particles", s.Particles),
		slog.Int("food_spawns", s.FoodSpawns),
		slog.Int("danger_spawns", s.DangerSpawns),
		slog.Int("particle_spawns", s.ParticleSpawns),
		slog.Int("eats", s.Eats),
		slog.Int("deaths", s.Deaths),
		slog.Int("wins", s.Wins),
		slog.Int("points", s.Points),
		slog.Float64("eaten_width_mean", s.EatenWidthMean),
		slog.Float64("enemy_width_mean", s.EnemyWidthMean),
		slog.Float64("enemy_width_p50", s.EnemyWidthP50),
		slog.Float64("enemy_width_p90", s.EnemyWidthP90),
		slog.Float64("enemy_width_max", s.EnemyWidthMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
