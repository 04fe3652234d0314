package rental

import "errors"

var (
	// ErrNotFound means the referenced surfboard or rental does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAvailable means the surfboard is not in the available state at
	// reservation time.
	ErrNotAvailable = errors.New("surfboard not available")

	// ErrInvalidTransition means the rental is not in the required source
	// state for the requested transition.
	ErrInvalidTransition = errors.New("invalid rental state transition")

	// ErrInconsistentState means a stored record violates an invariant, e.g.
	// a paused rental with no pause timestamp.
	ErrInconsistentState = errors.New("inconsistent rental state")

	// ErrInvalidEstimate means the estimated duration is not positive.
	ErrInvalidEstimate = errors.New("estimated time must be positive")

	// ErrInvalidAmount means the final amount is negative.
	ErrInvalidAmount = errors.New("final amount must not be negative")
)
