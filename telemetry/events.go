// Package telemetry provides windowed gameplay statistics and CSV output.
package telemetry

// EventKind identifies session lifecycle events.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventWin      EventKind = "win"
	EventContinue EventKind = "continue"
	EventDeath    EventKind = "death"
	EventEnd      EventKind = "end"
)

// Event is one session lifecycle record written to events.csv.
type Event struct {
	Tick        int64     `csv:"tick"`
	Session     int       `csv:"session"`
	Kind        EventKind `csv:"kind"`
	Difficulty  int       `csv:"difficulty"`
	Score       int       `csv:"score"`
	PlayerWidth float64   `csv:"player_width"`
	EnemyID     uint32    `csv:"enemy_id"` // killer for death events, 0 otherwise
}

// NewEvent creates a lifecycle event.
func NewEvent(kind EventKind, tick int64, session, difficulty, score int, playerWidth float64) Event {
	return Event{
		Tick:        tick,
		Session:     session,
		Kind:        kind,
		Difficulty:  difficulty,
		Score:       score,
		PlayerWidth: playerWidth,
	}
}
