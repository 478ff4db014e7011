package telemetry

// Sample is the state observed at the end of a window.
type Sample struct {
	Difficulty  int
	Score       int
	PlayerWidth float64
	Enemies     int
	Dangerous   int
	Particles   int
	EnemyWidths []float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	dtMs                float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	foodSpawns   int
	dangerSpawns int
	particles    int
	eats         int
	deaths       int
	wins         int
	points       int
	eatenWidths  []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds
// dtMs: milliseconds per tick
func NewCollector(windowDurationSec, dtMs float64) *Collector {
	ticksPerWindow := int64(windowDurationSec * 1000 / dtMs)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dtMs:                dtMs,
	}
}

// RecordSpawn records an enemy spawn.
func (c *Collector) RecordSpawn(dangerous bool) {
	if dangerous {
		c.dangerSpawns++
	} else {
		c.foodSpawns++
	}
}

// RecordParticle records an ambient particle spawn.
func (c *Collector) RecordParticle() {
	c.particles++
}

// RecordEat records the player eating an enemy.
func (c *Collector) RecordEat(width float64, points int) {
	c.eats++
	c.points += points
	c.eatenWidths = append(c.eatenWidths, width)
}

// RecordDeath records the player dying.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordWin records the win threshold being reached.
func (c *Collector) RecordWin() {
	c.wins++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, s Sample) WindowStats {
	widthMean, widthP50, widthP90, widthMax := ComputeWidthStats(s.EnemyWidths)
	eatenMean, _, _, _ := ComputeWidthStats(c.eatenWidths)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dtMs / 1000,

		Difficulty:  s.Difficulty,
		Score:       s.Score,
		PlayerWidth: s.PlayerWidth,
		Enemies:     s.Enemies,
		Dangerous:   s.Dangerous,
		Particles:   s.Particles,

		FoodSpawns:     c.foodSpawns,
		DangerSpawns:   c.dangerSpawns,
		ParticleSpawns: c.particles,
		Eats:           c.eats,
		Deaths:         c.deaths,
		Wins:           c.wins,
		Points:         c.points,

		EatenWidthMean: eatenMean,
		EnemyWidthMean: widthMean,
		EnemyWidthP50:  widthP50,
		EnemyWidthP90:  widthP90,
		EnemyWidthMax:  widthMax,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.foodSpawns = 0
	c.dangerSpawns = 0
	c.particles = 0
	c.eats = 0
	c.deaths = 0
	c.wins = 0
	c.points = 0
	c.eatenWidths = c.eatenWidths[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
