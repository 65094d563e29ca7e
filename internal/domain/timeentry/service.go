package timeentry

import "context"

// TimeEntryService is the attendance ledger. Clock mutations are never
// retried internally; a failed call must be followed by a fresh read.
type TimeEntryService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// Scan toggles the employee's shift: closes the open entry if one exists,
	// otherwise opens a new one.
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	ListEntries(ctx context.Context, filter EntryFilter) ([]TimeEntryResponse, error)
}
