package holiday

import "errors"

var (
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrHolidayDateTaken   = errors.New("an active holiday already exists on this date")
	ErrHolidayAlreadyGone = errors.New("holiday is already inactive")
)
