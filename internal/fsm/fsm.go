// Package fsm models the debugger session lifecycle: the debugger is Inactive
// until activated, Active until deactivated, and a hard reset wipes the
// session from either state.
package fsm

import "fmt"

type State string

type Event string

const (
	StateInactive State = "inactive"
	StateActive   State = "active"
)

const (
	EventActivate   Event = "activate"
	EventDeactivate Event = "deactivate"
	EventHardReset  Event = "hard_reset"
)

func Transition(current State, event Event) (State, error) {
	if event == EventHardReset {
		return StateInactive, nil
	}

	switch current {
	case StateInactive:
		switch event {
		case EventActivate:
			return StateActive, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateActive:
		switch event {
		case EventDeactivate:
			return StateInactive, nil
		default:
			return current, invalidTransition(current, event)
		}
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
