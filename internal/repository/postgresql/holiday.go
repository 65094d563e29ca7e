package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, holiday_date, name, is_active, created_at, updated_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Date, &h.Name, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	h.Date = calendar.Normalize(h.Date)
	return h, err
}

// IsHoliday implements holiday.HolidayCalendar.
func (h *holidayRepositoryImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, h.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM holidays WHERE holiday_date = $1 AND is_active = TRUE
		)
	`, calendar.Normalize(date)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up holiday: %w", err)
	}

	return exists, nil
}

// ListActiveInMonth implements holiday.HolidayCalendar.
func (h *holidayRepositoryImpl) ListActiveInMonth(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	first, last := calendar.MonthBounds(year, month)
	return h.listActiveBetween(ctx, first, last)
}

// ListActiveInYear implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListActiveInYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return h.listActiveBetween(ctx, calendar.Date(year, time.January, 1), calendar.Date(year, time.December, 31))
}

func (h *holidayRepositoryImpl) listActiveBetween(ctx context.Context, first, last time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE holiday_date BETWEEN $1 AND $2
		  AND is_active = TRUE
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		hol, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (holiday_date, name, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query, calendar.Normalize(newHoliday.Date), newHoliday.Name))
	if err != nil {
		if database.IsUniqueViolation(err, "holidays_active_date_key") {
			return holiday.Holiday{}, holiday.ErrHolidayDateTaken
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// Deactivate implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	var wasActive bool
	err := q.QueryRow(ctx, `
		UPDATE holidays AS h
		SET is_active = FALSE, updated_at = NOW()
		FROM (SELECT id, is_active FROM holidays WHERE id = $1) AS prev
		WHERE h.id = prev.id
		RETURNING prev.is_active
	`, id).Scan(&wasActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to deactivate holiday: %w", err)
	}
	if !wasActive {
		return holiday.ErrHolidayAlreadyGone
	}

	return nil
}
