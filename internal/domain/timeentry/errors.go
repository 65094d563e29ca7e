package timeentry

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("employee is already clocked in")
	ErrNoActiveEntry    = errors.New("no active time entry found")

	// ErrAnomalousDuration means clock-out would not come after clock-in,
	// usually from clock skew. The entry is left open for an administrator.
	ErrAnomalousDuration = errors.New("shift duration is not positive")

	ErrMemberCodeMismatch = errors.New("member code does not match employee")
)
