package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an action is not allowed in the current status.
var ErrInvalidTransition = errors.New("invalid transition")

// Status is the session lifecycle state.
type Status uint8

const (
	StatusStart Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Action drives the state machine.
type Action uint8

const (
	ActionStart Action = iota
	ActionPauseToggle
	ActionResume
	ActionContinue
	ActionEnd
	ActionMenu
	ActionDie
	ActionWin
)

var actionNames = [...]string{
	ActionStart:       "start",
	ActionPauseToggle: "pause_toggle",
	ActionResume:      "resume",
	ActionContinue:    "continue",
	ActionEnd:         "end",
	ActionMenu:        "menu",
	ActionDie:         "die",
	ActionWin:         "win",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Transition describes one applied state change.
type Transition struct {
	Action  Action
	From    Status
	To      Status
	Victory bool // the new state is the victory pause
}

// Machine is the session status state machine.
// Victory is represented as StatusPaused with the victory flag set; a victory
// pause only leaves through Continue or End.
type Machine struct {
	status    Status
	victory   bool
	listeners []func(Transition)
}

// NewMachine returns a machine in StatusStart.
func NewMachine() *Machine {
	return &Machine{status: StatusStart}
}

// Status returns the current status.
func (m *Machine) Status() Status {
	return m.status
}

// Victory reports whether the machine is showing the victory pause.
func (m *Machine) Victory() bool {
	return m.victory
}

// OnTransition registers a listener. Listeners run synchronously, in
// registration order, after the state has changed.
func (m *Machine) OnTransition(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}

// Allowed reports whether the action is valid in the current state.
func (m *Machine) Allowed(a Action) bool {
	_, _, ok := m.next(a)
	return ok
}

// Apply performs the action. Invalid actions leave the state untouched and
// return an error wrapping ErrInvalidTransition.
func (m *Machine) Apply(a Action) error {
	to, victory, ok := m.next(a)
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, a, m.describe())
	}

	t := Transition{Action: a, From: m.status, To: to, Victory: victory}
	m.status = to
	m.victory = victory

	for _, fn := range m.listeners {
		fn(t)
	}
	return nil
}

func (m *Machine) describe() string {
	if m.victory {
		return "paused(victory)"
	}
	return m.status.String()
}

// next returns the target state for an action.
func (m *Machine) next(a Action) (Status, bool, bool) {
	switch m.status {
	case StatusStart:
		if a == ActionStart {
			return StatusPlaying, false, true
		}
	case StatusPlaying:
		switch a {
		case ActionPauseToggle:
			return StatusPaused, false, true
		case ActionDie:
			return StatusGameOver, false, true
		case ActionWin:
			return StatusPaused, true, true
		}
	case StatusPaused:
		if m.victory {
			switch a {
			case ActionContinue:
				return StatusPlaying, false, true
			case ActionEnd:
				return StatusStart, false, true
			}
			break
		}
		switch a {
		case ActionPauseToggle, ActionResume:
			return StatusPlaying, false, true
		case ActionMenu:
			return StatusStart, false, true
		}
	case StatusGameOver:
		if a == ActionMenu {
			return StatusStart, false, true
		}
	}
	return m.status, m.victory, false
}
