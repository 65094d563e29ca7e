package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository is the entry store.
type TimeEntryRepository interface {
	// Create inserts an open entry. It returns ErrAlreadyClockedIn when the
	// store already holds an open entry for the employee.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetOpenByEmployee returns the most recently opened entry without a
	// clock-out, or ErrNoActiveEntry.
	GetOpenByEmployee(ctx context.Context, employeeID string) (TimeEntry, error)

	// Close persists clock-out, totals and categories of a still-open entry.
	// It returns ErrNoActiveEntry if the entry was closed meanwhile.
	Close(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// ListByDateRange returns entries whose entry date lies in [start, end],
	// ordered by entry date then clock-in.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]TimeEntry, error)

	// ListByEmployee returns an employee's entries, newest first, optionally
	// restricted to one entry date.
	ListByEmployee(ctx context.Context, employeeID string, date *time.Time) ([]TimeEntry, error)
}
