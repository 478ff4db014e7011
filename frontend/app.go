// Package frontend runs the game in a raylib window: it polls the keyboard,
// drives game frames from the display clock and draws published snapshots.
package frontend

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/audio"
	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
	"github.com/pthm-cable/bigfish/renderer"
	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/ui"
	"github.com/pthm-cable/bigfish/ui/locale"
)

// Settings are the window-mode options from the command line.
type Settings struct {
	Lang       string
	Difficulty int   // initial slider position
	MaxTicks   int64 // stop after this many ticks, 0 for no limit
}

// App owns the window-side collaborators.
type App struct {
	cfg  *config.Config
	game *game.Game
	snap game.Snapshot

	audio     game.Audio
	water     *renderer.WaterBackground
	fish      *renderer.FishRenderer
	particles *renderer.ParticleRenderer
	hud       *ui.HUD
	menu      *ui.StartMenu
	modals    *ui.Modals
	perf      *ui.PerfPanel

	showPerf     bool
	showHitboxes bool
}

// Publish stores the latest snapshot for drawing.
func (a *App) Publish(s game.Snapshot) {
	a.snap = s
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, opts game.Options, s Settings) error {
	loc := locale.New(s.Lang)

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), loc.T(locale.Title))
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyNull) // Esc pauses instead of quitting

	a := &App{
		cfg:       cfg,
		audio:     audio.New(cfg.Audio),
		water:     renderer.NewWaterBackground(int32(cfg.Screen.Width), int32(cfg.Screen.Height)),
		fish:      renderer.NewFishRenderer(),
		particles: renderer.NewParticleRenderer(),
		hud:       ui.NewHUD(loc),
		menu:      ui.NewStartMenu(loc, s.Difficulty, cfg.Game.MaxDifficulty),
		modals:    ui.NewModals(loc),
		perf:      ui.NewPerfPanel(int32(cfg.Screen.Width)-240, 50, systems.NewSystemRegistry()),
	}
	if closer, ok := a.audio.(interface{ Close() }); ok {
		defer closer.Close()
	}

	opts.Audio = a.audio
	opts.Sink = a
	g, err := game.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()
	a.game = g
	a.snap = g.Snapshot()

	slog.Info("window open", "lang", loc.Tag().String(), "width", cfg.Screen.Width, "height", cfg.Screen.Height)

	for !rl.WindowShouldClose() {
		a.handleDebugKeys()
		g.Frame(rl.GetTime()*1000, PollIntents())
		if u, ok := a.audio.(interface{ Update() }); ok {
			u.Update()
		}
		a.draw()

		if s.MaxTicks > 0 && g.Ticks() >= s.MaxTicks {
			slog.Info("max ticks reached", "tick", g.Ticks())
			break
		}
	}
	return nil
}

// draw renders the current snapshot and handles UI buttons.
func (a *App) draw() {
	snap := a.snap
	w, h := int32(a.cfg.Screen.Width), int32(a.cfg.Screen.Height)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.water.Draw(float32(rl.GetTime()))
	a.particles.Draw(snap.Particles)

	if snap.Status != game.StatusStart {
		a.fish.DrawAll(snap.Player, snap.Enemies)
		if a.showHitboxes {
			ui.DrawHitboxes(snap.Player, snap.Enemies, a.cfg.Game.HitboxScale)
		}
		a.hud.Draw(ui.HUDData{
			Score:        snap.Score,
			Width:        snap.Player.Width,
			MaxSize:      snap.MaxSize,
			Difficulty:   snap.Difficulty,
			Won:          snap.Won,
			ScreenWidth:  w,
			ScreenHeight: h,
		})
	}

	if a.showPerf {
		a.perf.Draw(a.game.Perf(), rl.GetFPS(), len(snap.Enemies), len(snap.Particles))
	}

	switch {
	case snap.Status == game.StatusStart:
		if a.menu.Draw(w, h) {
			a.do("start", a.game.Start(a.menu.Difficulty()))
		}
	case snap.Status == game.StatusGameOver:
		if a.modals.DrawGameOver(w, h, snap.Score) == ui.ModalMenu {
			a.do("menu", a.game.Menu())
		}
	case snap.Status == game.StatusPaused && snap.Victory:
		switch a.modals.DrawVictory(w, h, snap.Score) {
		case ui.ModalContinue:
			a.do("continue", a.game.Continue())
		case ui.ModalEnd:
			a.do("end", a.game.End())
		}
	case snap.Status == game.StatusPaused:
		switch a.modals.DrawPause(w, h) {
		case ui.ModalResume:
			a.do("resume", a.game.Resume())
		case ui.ModalMenu:
			a.do("menu", a.game.Menu())
		}
	}

	rl.EndDrawing()
}

// handleDebugKeys toggles the debug overlays.
func (a *App) handleDebugKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		a.showHitboxes = !a.showHitboxes
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		a.showPerf = !a.showPerf
	}
}

// do logs a rejected UI action.
func (a *App) do(action string, err error) {
	if err != nil {
		slog.Debug("ui action rejected", "action", action, "error", err)
	}
}
