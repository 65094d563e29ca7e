package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type timeEntryRepository struct {
	mu        sync.RWMutex
	rows      map[string]timeentry.TimeEntry
	employees employee.EmployeeRepository
	now       func() time.Time
}

// NewTimeEntryRepository stores entries; employees, when set, fills in the
// joined employee name and member code.
func NewTimeEntryRepository(employees employee.EmployeeRepository) timeentry.TimeEntryRepository {
	return &timeEntryRepository{
		rows:      make(map[string]timeentry.TimeEntry),
		employees: employees,
		now:       time.Now,
	}
}

func (r *timeEntryRepository) withEmployee(ctx context.Context, te timeentry.TimeEntry) timeentry.TimeEntry {
	if r.employees == nil {
		return te
	}
	emp, err := r.employees.GetByID(ctx, te.EmployeeID)
	if err != nil {
		return te
	}
	name, code := emp.Name, emp.MemberCode
	te.EmployeeName = &name
	te.MemberCode = &code
	return te
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	r.mu.Lock()
	for _, te := range r.rows {
		if te.EmployeeID == entry.EmployeeID && te.IsOpen() {
			r.mu.Unlock()
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyClockedIn
		}
	}

	now := r.now()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.ClockOut = nil
	entry.EntryDate = calendar.Normalize(entry.EntryDate)
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.rows[entry.ID] = entry
	r.mu.Unlock()

	return r.withEmployee(ctx, entry), nil
}

// GetOpenByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (timeentry.TimeEntry, error) {
	r.mu.RLock()
	var (
		open  timeentry.TimeEntry
		found bool
	)
	for _, te := range r.rows {
		if te.EmployeeID == employeeID && te.IsOpen() && (!found || te.ClockIn.After(open.ClockIn)) {
			open, found = te, true
		}
	}
	r.mu.RUnlock()

	if !found {
		return timeentry.TimeEntry{}, timeentry.ErrNoActiveEntry
	}
	return r.withEmployee(ctx, open), nil
}

// Close implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Close(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	r.mu.Lock()
	stored, ok := r.rows[entry.ID]
	if !ok || !stored.IsOpen() {
		r.mu.Unlock()
		return timeentry.TimeEntry{}, timeentry.ErrNoActiveEntry
	}

	stored.ClockOut = entry.ClockOut
	stored.TotalHours = entry.TotalHours
	stored.RegularHours = entry.RegularHours
	stored.DailyOTHours = entry.DailyOTHours
	stored.RestDayOTHours = entry.RestDayOTHours
	stored.PublicHolidayOTHours = entry.PublicHolidayOTHours
	stored.IsRestDay = entry.IsRestDay
	stored.IsPublicHoliday = entry.IsPublicHoliday
	stored.UpdatedAt = r.now()
	r.rows[stored.ID] = stored
	r.mu.Unlock()

	return r.withEmployee(ctx, stored), nil
}

// ListByDateRange implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]timeentry.TimeEntry, error) {
	start, end = calendar.Normalize(start), calendar.Normalize(end)

	r.mu.RLock()
	entries := make([]timeentry.TimeEntry, 0)
	for _, te := range r.rows {
		if calendar.Overlaps(te.EntryDate, te.EntryDate, start, end) {
			entries = append(entries, te)
		}
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.ClockIn.Equal(b.ClockIn) {
			return a.ClockIn.Before(b.ClockIn)
		}
		return a.ID < b.ID
	})

	for i := range entries {
		entries[i] = r.withEmployee(ctx, entries[i])
	}
	return entries, nil
}

// ListByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByEmployee(ctx context.Context, employeeID string, date *time.Time) ([]timeentry.TimeEntry, error) {
	r.mu.RLock()
	entries := make([]timeentry.TimeEntry, 0)
	for _, te := range r.rows {
		if te.EmployeeID != employeeID {
			continue
		}
		if date != nil && !te.EntryDate.Equal(calendar.Normalize(*date)) {
			continue
		}
		entries = append(entries, te)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ClockIn.After(entries[j].ClockIn)
	})

	for i := range entries {
		entries[i] = r.withEmployee(ctx, entries[i])
	}
	return entries, nil
}
