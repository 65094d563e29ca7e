package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeOffColumns = `id, employee_id, start_date, end_date, status, reason, created_at, updated_at`

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepositoryImpl{db: db}
}

func scanTimeOff(row pgx.Row) (timeoff.TimeOffRequest, error) {
	var r timeoff.TimeOffRequest
	err := row.Scan(&r.ID, &r.EmployeeID, &r.StartDate, &r.EndDate, &r.Status, &r.Reason, &r.CreatedAt, &r.UpdatedAt)
	r.StartDate = calendar.Normalize(r.StartDate)
	r.EndDate = calendar.Normalize(r.EndDate)
	return r, err
}

// ListApprovedOverlapping implements timeoff.TimeOffRegistry.
func (t *timeOffRepositoryImpl) ListApprovedOverlapping(ctx context.Context, year int, month time.Month) ([]timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)
	first, last := calendar.MonthBounds(year, month)

	query := `
		SELECT ` + timeOffColumns + `
		FROM time_off_requests
		WHERE status = $1
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, timeoff.StatusApproved, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved time off: %w", err)
	}
	defer rows.Close()

	requests := make([]timeoff.TimeOffRequest, 0)
	for rows.Next() {
		r, err := scanTimeOff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time off: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time off: %w", err)
	}

	return requests, nil
}

// Create implements timeoff.TimeOffRepository.
func (t *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.TimeOffRequest) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_off_requests (employee_id, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + timeOffColumns

	created, err := scanTimeOff(q.QueryRow(ctx, query,
		req.EmployeeID,
		calendar.Normalize(req.StartDate),
		calendar.Normalize(req.EndDate),
		req.Status,
		req.Reason,
	))
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return created, nil
}

// GetByID implements timeoff.TimeOffRepository.
func (t *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	r, err := scanTimeOff(q.QueryRow(ctx, `SELECT `+timeOffColumns+` FROM time_off_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to get time off request: %w", err)
	}

	return r, nil
}

// UpdateStatus implements timeoff.TimeOffRepository.
func (t *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timeoff.Status) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_off_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING ` + timeOffColumns

	r, err := scanTimeOff(q.QueryRow(ctx, query, id, status, timeoff.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := t.GetByID(ctx, id); getErr != nil {
				return timeoff.TimeOffRequest{}, getErr
			}
			return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffAlreadyProcessed
		}
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to update time off status: %w", err)
	}

	return r, nil
}
