package timeentry

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/overtime"
	"github.com/shopspring/decimal"
)

// TimeEntryServiceImpl is the attendance ledger. Every clock mutation runs
// in one transaction that first locks the employee row, so check-then-write
// on the employee's open entry is a critical section keyed by employee.
type TimeEntryServiceImpl struct {
	tx           database.Transactor
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	holidays     holiday.HolidayCalendar

	location *time.Location
	now      func() time.Time
}

type Option func(*TimeEntryServiceImpl)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *TimeEntryServiceImpl) { s.now = now }
}

// WithLocation sets the calendar of record used to derive entry dates.
func WithLocation(loc *time.Location) Option {
	return func(s *TimeEntryServiceImpl) {
		if loc != nil {
			s.location = loc
		}
	}
}

func NewTimeEntryService(
	tx database.Transactor,
	entryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	holidays holiday.HolidayCalendar,
	opts ...Option,
) timeentry.TimeEntryService {
	s := &TimeEntryServiceImpl{
		tx:           tx,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		holidays:     holidays,
		location:     time.UTC,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClockIn implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	var opened timeentry.TimeEntry
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		if _, err := s.entryRepo.GetOpenByEmployee(ctx, emp.ID); err == nil {
			return timeentry.ErrAlreadyClockedIn
		} else if !errors.Is(err, timeentry.ErrNoActiveEntry) {
			return err
		}

		opened, err = s.open(ctx, emp, req.Notes)
		return err
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(opened), nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	var closed timeentry.TimeEntry
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		open, err := s.entryRepo.GetOpenByEmployee(ctx, emp.ID)
		if err != nil {
			return err
		}

		closed, err = s.close(ctx, open)
		return err
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(closed), nil
}

// Scan implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Scan(ctx context.Context, req timeentry.ScanRequest) (timeentry.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.ScanResponse{}, err
	}

	var resp timeentry.ScanResponse
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !strings.EqualFold(emp.MemberCode, strings.TrimSpace(req.MemberCode)) {
			return timeentry.ErrMemberCodeMismatch
		}

		open, err := s.entryRepo.GetOpenByEmployee(ctx, emp.ID)
		switch {
		case err == nil:
			closed, err := s.close(ctx, open)
			if err != nil {
				return err
			}
			resp = timeentry.ScanResponse{Action: timeentry.ScanActionClockOut, Entry: timeentry.ToResponse(closed)}
		case errors.Is(err, timeentry.ErrNoActiveEntry):
			opened, err := s.open(ctx, emp, nil)
			if err != nil {
				return err
			}
			resp = timeentry.ScanResponse{Action: timeentry.ScanActionClockIn, Entry: timeentry.ToResponse(opened)}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return timeentry.ScanResponse{}, err
	}

	return resp, nil
}

// ListEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListEntries(ctx context.Context, filter timeentry.EntryFilter) ([]timeentry.TimeEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByEmployee(ctx, filter.EmployeeID, filter.ParsedDate())
	if err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, timeentry.ToResponse(e))
	}
	return responses, nil
}

// open must run inside the employee's critical section.
func (s *TimeEntryServiceImpl) open(ctx context.Context, emp employee.Employee, notes *string) (timeentry.TimeEntry, error) {
	if !emp.IsActive {
		return timeentry.TimeEntry{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	entry := timeentry.TimeEntry{
		EmployeeID: emp.ID,
		ClockIn:    now,
		EntryDate:  calendar.DateOf(now, s.location),
	}
	if notes != nil {
		entry.Notes = strings.TrimSpace(*notes)
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	slog.Info("clocked in", "employee_id", emp.ID, "entry_id", created.ID, "entry_date", calendar.Key(created.EntryDate))
	return created, nil
}

// close must run inside the employee's critical section.
func (s *TimeEntryServiceImpl) close(ctx context.Context, open timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	clockOut := s.now()

	worked := clockOut.Sub(open.ClockIn)
	if worked <= 0 {
		slog.Warn("anomalous shift duration, entry left open",
			"employee_id", open.EmployeeID,
			"entry_id", open.ID,
			"clock_in", open.ClockIn,
			"clock_out", clockOut,
		)
		return timeentry.TimeEntry{}, timeentry.ErrAnomalousDuration
	}

	isHoliday, err := s.holidays.IsHoliday(ctx, open.EntryDate)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	day := overtime.DayContext{
		IsRestDay:       overtime.IsRestDay(open.EntryDate.Weekday()),
		IsPublicHoliday: isHoliday,
	}
	total := overtime.DurationHours(worked)

	breakdown, err := overtime.Classify(total, day)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	open.ClockOut = &clockOut
	open.TotalHours = decimal.NewNullDecimal(total)
	open.ApplyBreakdown(breakdown, day)

	closed, err := s.entryRepo.Close(ctx, open)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	slog.Info("clocked out",
		"employee_id", closed.EmployeeID,
		"entry_id", closed.ID,
		"total_hours", total.StringFixed(overtime.HoursPrecision),
		"rest_day", day.IsRestDay,
		"public_holiday", day.IsPublicHoliday,
	)
	return closed, nil
}
