package timeoff

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type TimeOffServiceImpl struct {
	timeOffRepo  timeoff.TimeOffRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewTimeOffService(timeOffRepo timeoff.TimeOffRepository, employeeRepo employee.EmployeeRepository) timeoff.TimeOffService {
	return &TimeOffServiceImpl{
		timeOffRepo:  timeOffRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) CreateTimeOff(ctx context.Context, req timeoff.CreateTimeOffRequest) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if !emp.IsActive {
		return timeoff.TimeOffResponse{}, employee.ErrEmployeeInactive
	}

	start, end := req.Range()
	created, err := s.timeOffRepo.Create(ctx, timeoff.TimeOffRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Status:     timeoff.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	slog.Info("time-off requested", "request_id", created.ID, "employee_id", created.EmployeeID)
	return timeoff.ToResponse(created), nil
}

// ApproveTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) ApproveTimeOff(ctx context.Context, id string) (timeoff.TimeOffResponse, error) {
	return s.decide(ctx, id, timeoff.StatusApproved)
}

// RejectTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) RejectTimeOff(ctx context.Context, id string) (timeoff.TimeOffResponse, error) {
	return s.decide(ctx, id, timeoff.StatusRejected)
}

func (s *TimeOffServiceImpl) decide(ctx context.Context, id string, status timeoff.Status) (timeoff.TimeOffResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(id) {
		errs.Add("id", "id must be a valid UUID")
	}
	if err := errs.Err(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	updated, err := s.timeOffRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	slog.Info("time-off processed", "request_id", id, "status", status)
	return timeoff.ToResponse(updated), nil
}

// ListApproved implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) ListApproved(ctx context.Context, filter timeoff.MonthFilter) ([]timeoff.TimeOffResponse, error) {
	filter.ApplyDefaults(s.now())
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.timeOffRepo.ListApprovedOverlapping(ctx, *filter.Year, time.Month(*filter.Month))
	if err != nil {
		return nil, err
	}

	responses := make([]timeoff.TimeOffResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, timeoff.ToResponse(r))
	}
	return responses, nil
}
