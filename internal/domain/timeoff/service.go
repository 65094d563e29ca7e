package timeoff

import "context"

type TimeOffService interface {
	CreateTimeOff(ctx context.Context, req CreateTimeOffRequest) (TimeOffResponse, error)
	ApproveTimeOff(ctx context.Context, id string) (TimeOffResponse, error)
	RejectTimeOff(ctx context.Context, id string) (TimeOffResponse, error)
	ListApproved(ctx context.Context, filter MonthFilter) ([]TimeOffResponse, error)
}
