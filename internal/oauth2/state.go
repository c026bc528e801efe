package oauth2

import (
	"context"
	"errors"
)

// State is a state of the device code polling loop.
type State int

const (
	StatePending State = iota
	StateSlowed
	StateDenied
	StateExpired
	StateSucceeded
	StateUnknownError
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateSlowed:
		return "SLOWED"
	case StateDenied:
		return "DENIED"
	case StateExpired:
		return "EXPIRED"
	case StateSucceeded:
		return "SUCCEEDED"
	case StateUnknownError:
		return "UNKNOWN_ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether the polling loop halts in this state.
func (s State) IsTerminal() bool {
	return s != StatePending && s != StateSlowed
}

// StateFromError maps the result of [Client.Poll] to the terminal state of the polling loop.
// Cancellation is not a state of the loop and reported with ok set to false.
func StateFromError(err error) (state State, ok bool) {
	switch {
	case err == nil:
		return StateSucceeded, true
	case errors.Is(err, ErrAccessDenied):
		return StateDenied, true
	case errors.Is(err, ErrExpiredToken):
		return StateExpired, true
	case errors.Is(err, ErrUnknownResponse):
		return StateUnknownError, true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatePending, false
	default:
		return StateUnknownError, true
	}
}
