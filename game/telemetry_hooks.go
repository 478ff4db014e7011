package game

import (
	"log/slog"

	"github.com/pthm-cable/bigfish/telemetry"
)

// flushTelemetry closes the stats window once enough ticks have run.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.ticks) {
		return
	}

	playerWidth := g.session.Pond().PlayerWidth()
	enemies, dangerous := g.session.Pond().Counts(playerWidth)

	stats := g.collector.Flush(g.ticks, telemetry.Sample{
		Difficulty:  g.session.Difficulty(),
		Score:       g.session.Score(),
		PlayerWidth: playerWidth,
		Enemies:     enemies,
		Dangerous:   dangerous,
		Particles:   g.session.Particles().Count(),
		EnemyWidths: g.session.EnemyWidths(),
	})

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "tick", g.ticks, "phases", g.perf)
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// recordEvent logs a lifecycle event and appends it to events.csv.
func (g *Game) recordEvent(kind telemetry.EventKind) {
	ev := telemetry.NewEvent(kind, g.ticks, g.sessions, g.session.Difficulty(), g.session.Score(), g.session.Pond().PlayerWidth())
	if kind == telemetry.EventDeath {
		ev.EnemyID = g.killedBy
	}

	slog.Info("session "+string(kind),
		"session", ev.Session,
		"tick", g.session.Tick(),
		"difficulty", ev.Difficulty,
		"score", ev.Score,
		"player_width", ev.PlayerWidth,
	)

	if err := g.outputManager.WriteEvent(ev); err != nil {
		slog.Error("failed to write event", "error", err)
	}
}
