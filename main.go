package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/frontend"
	"github.com/pthm-cable/bigfish/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, steered by the autopilot")
	difficulty := flag.Int("difficulty", 0, "Difficulty 1-10 (0 = use config)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	lang := flag.String("lang", "en", "UI language (en, de, es)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	startDifficulty := cfg.Game.Difficulty
	if *difficulty != 0 {
		startDifficulty = *difficulty
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		g, err := game.New(cfg, opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Close()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"difficulty", startDifficulty,
			"max_ticks", *maxTicks,
		)
		runHeadless(g, cfg, startDifficulty, *maxTicks)
		return
	}

	err := frontend.Run(cfg, opts, frontend.Settings{
		Lang:       *lang,
		Difficulty: startDifficulty,
		MaxTicks:   *maxTicks,
	})
	if err != nil {
		slog.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

// runHeadless plays sessions back to back on a simulated clock. The
// autopilot steers, deaths restart from the menu, and wins continue.
func runHeadless(g *game.Game, cfg *config.Config, difficulty int, maxTicks int64) {
	if err := g.Start(difficulty); err != nil {
		slog.Error("failed to start session", "error", err)
		return
	}

	nowMs := 0.0
	for {
		nowMs += cfg.Derived.DTMs
		g.Frame(nowMs, game.Autopilot(g.Snapshot()))

		switch {
		case g.Status() == game.StatusGameOver:
			if err := g.Menu(); err != nil {
				slog.Error("failed to leave game over", "error", err)
				return
			}
			if err := g.Start(difficulty); err != nil {
				slog.Error("failed to restart session", "error", err)
				return
			}
		case g.Victory():
			if err := g.Continue(); err != nil {
				slog.Error("failed to continue after win", "error", err)
				return
			}
		}

		if maxTicks > 0 && g.Ticks() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Ticks(), "score", g.Session().Score())
			return
		}
	}
}
