package engine

import "errors"

// ErrInvalidAction is returned when the action code is outside the action space or not legal
var ErrInvalidAction = errors.New("invalid action")

// ErrInconsistentState is returned when the history breaks an invariant of the engine
var ErrInconsistentState = errors.New("inconsistent state")

// ErrHandComplete is returned when stepping a hand that has been settled
var ErrHandComplete = errors.New("hand is complete")
