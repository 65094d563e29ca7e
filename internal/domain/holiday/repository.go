package holiday

import (
	"context"
	"time"
)

// HolidayCalendar is the read-only lookup the ledger and the timesheet use.
type HolidayCalendar interface {
	// IsHoliday reports whether date is an active holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// ListActiveInMonth returns active holidays of the month ordered by date.
	ListActiveInMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)
}

type HolidayRepository interface {
	HolidayCalendar

	ListActiveInYear(ctx context.Context, year int) ([]Holiday, error)

	// Create returns ErrHolidayDateTaken when an active holiday exists on the date.
	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)

	// Deactivate returns ErrHolidayNotFound or ErrHolidayAlreadyGone.
	Deactivate(ctx context.Context, id string) error
}
