package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	timeEntryColumns = `
		te.id, te.employee_id, te.clock_in_time, te.clock_out_time, te.entry_date,
		te.total_hours, te.regular_hours, te.daily_ot_hours, te.rest_day_ot_hours, te.public_holiday_ot_hours,
		te.is_rest_day, te.is_public_holiday, te.notes, te.created_at, te.updated_at,
		e.name AS employee_name, e.member_code`

	timeEntryFrom = `
		FROM time_entries te
		LEFT JOIN employees e ON e.id = te.employee_id`

	// Writes select from their own CTE; a plain time_entries read in the same
	// statement sees the pre-write snapshot.
	timeEntryFromCTE = `
		FROM te
		LEFT JOIN employees e ON e.id = te.employee_id`

	createTimeEntryQuery = `
		WITH te AS (
			INSERT INTO time_entries (employee_id, clock_in_time, entry_date, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT ` + timeEntryColumns + timeEntryFromCTE

	closeTimeEntryQuery = `
		WITH te AS (
			UPDATE time_entries
			SET clock_out_time = $2,
				total_hours = $3,
				regular_hours = $4,
				daily_ot_hours = $5,
				rest_day_ot_hours = $6,
				public_holiday_ot_hours = $7,
				is_rest_day = $8,
				is_public_holiday = $9,
				updated_at = NOW()
			WHERE id = $1 AND clock_out_time IS NULL
			RETURNING *
		)
		SELECT ` + timeEntryColumns + timeEntryFromCTE

	openEntryConstraint = "time_entries_one_open_per_employee"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var te timeentry.TimeEntry
	err := row.Scan(
		&te.ID, &te.EmployeeID, &te.ClockIn, &te.ClockOut, &te.EntryDate,
		&te.TotalHours, &te.RegularHours, &te.DailyOTHours, &te.RestDayOTHours, &te.PublicHolidayOTHours,
		&te.IsRestDay, &te.IsPublicHoliday, &te.Notes, &te.CreatedAt, &te.UpdatedAt,
		&te.EmployeeName, &te.MemberCode,
	)
	te.EntryDate = calendar.Normalize(te.EntryDate)
	return te, err
}

func collectTimeEntries(rows pgx.Rows) ([]timeentry.TimeEntry, error) {
	defer rows.Close()

	entries := make([]timeentry.TimeEntry, 0)
	for rows.Next() {
		te, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, nil
}

// Create implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	created, err := scanTimeEntry(q.QueryRow(ctx, createTimeEntryQuery,
		entry.EmployeeID,
		entry.ClockIn,
		calendar.Normalize(entry.EntryDate),
		entry.Notes,
	))
	if err != nil {
		if database.IsUniqueViolation(err, openEntryConstraint) {
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyClockedIn
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

// GetOpenByEmployee implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + timeEntryFrom + `
		WHERE te.employee_id = $1
		  AND te.clock_out_time IS NULL
		ORDER BY te.clock_in_time DESC
		LIMIT 1
	`

	te, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrNoActiveEntry
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return te, nil
}

// Close implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) Close(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	closed, err := scanTimeEntry(q.QueryRow(ctx, closeTimeEntryQuery,
		entry.ID,
		entry.ClockOut,
		entry.TotalHours,
		entry.RegularHours,
		entry.DailyOTHours,
		entry.RestDayOTHours,
		entry.PublicHolidayOTHours,
		entry.IsRestDay,
		entry.IsPublicHoliday,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrNoActiveEntry
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to close time entry: %w", err)
	}

	return closed, nil
}

// ListByDateRange implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + timeEntryFrom + `
		WHERE te.entry_date BETWEEN $1 AND $2
		ORDER BY te.entry_date ASC, te.clock_in_time ASC, te.id ASC
	`

	rows, err := q.Query(ctx, query, calendar.Normalize(start), calendar.Normalize(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return collectTimeEntries(rows)
}

// ListByEmployee implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, date *time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	where := "te.employee_id = $1"
	args := []interface{}{employeeID}
	if date != nil {
		where += " AND te.entry_date = $2"
		args = append(args, calendar.Normalize(*date))
	}

	query := `
		SELECT ` + timeEntryColumns + timeEntryFrom + `
		WHERE ` + where + `
		ORDER BY te.clock_in_time DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee time entries: %w", err)
	}

	return collectTimeEntries(rows)
}
