package timeoff

import (
	"context"
	"time"
)

// TimeOffRegistry is the read-only lookup the timesheet uses.
type TimeOffRegistry interface {
	// ListApprovedOverlapping returns approved requests whose range shares at
	// least one day with the month, ordered by start date.
	ListApprovedOverlapping(ctx context.Context, year int, month time.Month) ([]TimeOffRequest, error)
}

type TimeOffRepository interface {
	TimeOffRegistry

	Create(ctx context.Context, req TimeOffRequest) (TimeOffRequest, error)

	GetByID(ctx context.Context, id string) (TimeOffRequest, error)

	// UpdateStatus moves a pending request to status. It returns
	// ErrTimeOffAlreadyProcessed when the request is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status) (TimeOffRequest, error)
}
