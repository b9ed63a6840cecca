package sync

import "fmt"

// State tracks the hub connection lifecycle.
type State int

const (
	StateUnknown State = iota
	StateDisconnected
	StateConnecting
	StateConnected
	StateReconnecting
	StateDisconnecting
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// TransitionTo validates a state change and returns the new state, or an
// error when the change is not part of the lifecycle.
func (s State) TransitionTo(newState State) (State, error) {
	switch s {
	case StateDisconnected:
		if newState == StateConnecting {
			return newState, nil
		}
	case StateConnecting:
		switch newState {
		case StateConnected, StateDisconnected:
			return newState, nil
		}
	case StateConnected:
		switch newState {
		case StateReconnecting, StateDisconnecting, StateDisconnected:
			return newState, nil
		}
	case StateReconnecting:
		switch newState {
		case StateConnected, StateDisconnecting, StateDisconnected:
			return newState, nil
		}
	case StateDisconnecting:
		if newState == StateDisconnected {
			return newState, nil
		}
	}

	return StateUnknown, fmt.Errorf("invalid state transition from %v to %v", s, newState)
}
