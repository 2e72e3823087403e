package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	s := StateInactive

	next, err := Transition(s, EventActivate)
	require.NoError(t, err)
	require.Equal(t, StateActive, next)

	next, err = Transition(next, EventDeactivate)
	require.NoError(t, err)
	require.Equal(t, StateInactive, next)
}

func TestTransitionHardResetFromAnyStateGoesInactive(t *testing.T) {
	states := []State{StateInactive, StateActive}
	for _, state := range states {
		next, err := Transition(state, EventHardReset)
		require.NoError(t, err)
		require.Equal(t, StateInactive, next)
	}
}

func TestTransitionMatrixInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "inactive deactivate invalid", state: StateInactive, event: EventDeactivate, want: StateInactive, wantErr: true},
		{name: "active activate invalid", state: StateActive, event: EventActivate, want: StateActive, wantErr: true},
		{name: "inactive activate valid", state: StateInactive, event: EventActivate, want: StateActive, wantErr: false},
		{name: "active deactivate valid", state: StateActive, event: EventDeactivate, want: StateInactive, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Transition(tc.state, tc.event)
			require.Equal(t, tc.want, next)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid transition")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionUnknownState(t *testing.T) {
	next, err := Transition(State("mystery"), EventActivate)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state")
	require.Equal(t, State("mystery"), next)
}
