package error

import "errors"

// Record errors raised by the ledger service. Every lookup is scoped to the
// requesting user, so a record owned by someone else is reported as missing.
var (
	// ErrGoalNotFound is returned when a goal is not found for the user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrAccountNotFound is returned when an account is not found for the user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPlatformNotFound is returned when a platform does not exist.
	ErrPlatformNotFound = errors.New("platform not found")
)
