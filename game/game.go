// Package game wires the simulation systems into a playable session: the
// status state machine, the frame driver, telemetry and the audio and render
// collaborators.
package game

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed int64
	RNG  systems.RNG // overrides Seed when set

	Audio Audio
	Sink  Sink

	OutputDir     string // CSV output directory, empty to disable
	LogStats      bool
	StatsCallback func(telemetry.WindowStats)
}

// Game owns one session and drives it from host frames.
// It is not safe for concurrent use; the host calls every method from the
// same goroutine.
type Game struct {
	cfg     *config.Config
	machine *Machine
	session *Session
	audio   *SafeAudio
	sink    Sink
	hooks   Hooks

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	perf          *PerfStats
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Scheduling
	scheduled bool
	schedules int
	ticks     int64

	sessions int
	killedBy uint32
}

// New creates a game in the start state.
func New(cfg *config.Config, opts Options) (*Game, error) {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(opts.Seed)))
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		machine:       NewMachine(),
		session:       NewSession(cfg, rng),
		audio:         NewSafeAudio(opts.Audio),
		sink:          opts.Sink,
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DTMs),
		outputManager: om,
		perf:          NewPerfStats(),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	g.session.SetPerf(g.perf)
	g.hooks = Hooks{
		OnSpawn: func(kind systems.SpawnKind) {
			g.collector.RecordSpawn(kind == systems.SpawnDangerous)
		},
		OnParticle: g.collector.RecordParticle,
		OnEat: func(eat systems.Eat) {
			g.audio.PlayEat()
			g.collector.RecordEat(eat.Width, eat.Points)
		},
	}
	g.machine.OnTransition(g.onTransition)

	return g, nil
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.outputManager.Close()
}

// Start begins a new session at the given difficulty. Only valid from the start screen.
func (g *Game) Start(difficulty int) error {
	if !g.machine.Allowed(ActionStart) {
		return g.machine.Apply(ActionStart)
	}
	g.session.Reset(difficulty)
	g.sessions++
	g.killedBy = 0
	return g.machine.Apply(ActionStart)
}

// TogglePause pauses a running session or resumes a manual pause.
func (g *Game) TogglePause() error { return g.machine.Apply(ActionPauseToggle) }

// Resume leaves a manual pause.
func (g *Game) Resume() error { return g.machine.Apply(ActionResume) }

// Continue keeps playing after the victory pause. Growth is no longer capped
// and the win does not fire again.
func (g *Game) Continue() error { return g.machine.Apply(ActionContinue) }

// End leaves the victory pause for the start screen.
func (g *Game) End() error { return g.machine.Apply(ActionEnd) }

// Menu returns to the start screen from game over or a manual pause.
func (g *Game) Menu() error { return g.machine.Apply(ActionMenu) }

// Frame is called once per display refresh. A pause toggle in the input is
// applied first and may cancel the pending tick; otherwise a scheduled tick
// runs. The resulting state is published to the sink.
func (g *Game) Frame(nowMs float64, in Intents) {
	if in.Has(IntentPauseToggle) {
		if err := g.TogglePause(); err != nil {
			slog.Debug("pause toggle ignored", "error", err)
		}
	}

	if g.scheduled {
		g.scheduled = false
		g.step(nowMs, in)
	}

	if g.sink != nil {
		g.sink.Publish(g.Snapshot())
	}
}

// step runs one simulation tick and maps its outcome onto the state machine.
func (g *Game) step(nowMs float64, in Intents) {
	res := g.session.Step(nowMs, in, g.hooks)
	g.ticks++

	switch {
	case res.Resolution.Death:
		g.killedBy = res.Resolution.KilledBy
		g.collector.RecordDeath()
		g.apply(ActionDie)
	case res.Resolution.Win:
		g.collector.RecordWin()
		g.apply(ActionWin)
	}

	g.flushTelemetry()

	if g.machine.Status() == StatusPlaying {
		g.schedule()
	}
}

func (g *Game) apply(a Action) {
	if err := g.machine.Apply(a); err != nil {
		slog.Error("state transition failed", "error", err)
	}
}

// schedule requests the next tick. At most one tick is pending at a time.
func (g *Game) schedule() {
	if g.scheduled {
		return
	}
	g.scheduled = true
	g.schedules++
}

// onTransition keeps scheduling, ambience and the event log in step with the status.
func (g *Game) onTransition(t Transition) {
	wasPlaying := t.From == StatusPlaying
	isPlaying := t.To == StatusPlaying

	if isPlaying {
		g.schedule()
	} else {
		g.scheduled = false
	}

	switch {
	case isPlaying && !wasPlaying:
		g.audio.StartAmbience()
	case wasPlaying && !isPlaying:
		g.audio.StopAmbience()
	}

	switch t.Action {
	case ActionStart:
		g.recordEvent(telemetry.EventStart)
	case ActionWin:
		g.recordEvent(telemetry.EventWin)
	case ActionContinue:
		g.recordEvent(telemetry.EventContinue)
	case ActionDie:
		g.recordEvent(telemetry.EventDeath)
	case ActionEnd, ActionMenu:
		g.recordEvent(telemetry.EventEnd)
	default:
		slog.Debug("status changed", "action", t.Action, "from", t.From, "to", t.To)
	}
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	pond := g.session.Pond()
	b := g.session.Bounds()
	return Snapshot{
		Status:     g.machine.Status(),
		Victory:    g.machine.Victory(),
		Won:        g.session.Won(),
		Difficulty: g.session.Difficulty(),
		Score:      g.session.Score(),
		Tick:       g.session.Tick(),
		MaxSize:    g.cfg.Game.MaxSize,
		Width:      b.Width,
		Height:     b.Height,
		Player:     pond.PlayerView(),
		Enemies:    pond.EnemyViews(),
		Particles:  g.session.Particles().Snapshot(),
	}
}

// Status returns the current status.
func (g *Game) Status() Status { return g.machine.Status() }

// Victory reports whether the victory pause is showing.
func (g *Game) Victory() bool { return g.machine.Victory() }

// Session returns the current session.
func (g *Game) Session() *Session { return g.session }

// Ticks returns the number of simulation ticks run since creation.
func (g *Game) Ticks() int64 { return g.ticks }

// Schedules returns how many times a tick has been requested.
func (g *Game) Schedules() int { return g.schedules }

// Scheduled reports whether a tick is pending.
func (g *Game) Scheduled() bool { return g.scheduled }

// Perf returns per-phase tick timings.
func (g *Game) Perf() *PerfStats { return g.perf }
