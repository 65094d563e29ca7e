package timesheet

import "context"

type TimesheetService interface {
	// GetTimesheet builds the month report fresh on every call.
	GetTimesheet(ctx context.Context, req TimesheetRequest) (TimesheetReport, error)

	// ExportTimesheet renders the month report as a downloadable file.
	ExportTimesheet(ctx context.Context, req ExportRequest) (ExportFile, error)
}
