package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type holidayRepository struct {
	mu   sync.RWMutex
	rows map[string]holiday.Holiday
	now  func() time.Time
}

func NewHolidayRepository() holiday.HolidayRepository {
	return &holidayRepository{rows: make(map[string]holiday.Holiday), now: time.Now}
}

// IsHoliday implements holiday.HolidayCalendar.
func (r *holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	date = calendar.Normalize(date)
	for _, h := range r.rows {
		if h.IsActive && h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

// ListActiveInMonth implements holiday.HolidayCalendar.
func (r *holidayRepository) ListActiveInMonth(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	first, last := calendar.MonthBounds(year, month)
	return r.listActiveBetween(first, last), nil
}

// ListActiveInYear implements holiday.HolidayRepository.
func (r *holidayRepository) ListActiveInYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return r.listActiveBetween(calendar.Date(year, time.January, 1), calendar.Date(year, time.December, 31)), nil
}

func (r *holidayRepository) listActiveBetween(first, last time.Time) []holiday.Holiday {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holidays := make([]holiday.Holiday, 0)
	for _, h := range r.rows {
		if h.IsActive && calendar.Overlaps(h.Date, h.Date, first, last) {
			holidays = append(holidays, h)
		}
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newHoliday.Date = calendar.Normalize(newHoliday.Date)
	for _, h := range r.rows {
		if h.IsActive && h.Date.Equal(newHoliday.Date) {
			return holiday.Holiday{}, holiday.ErrHolidayDateTaken
		}
	}

	now := r.now()
	if newHoliday.ID == "" {
		newHoliday.ID = uuid.NewString()
	}
	newHoliday.IsActive = true
	newHoliday.CreatedAt = now
	newHoliday.UpdatedAt = now
	r.rows[newHoliday.ID] = newHoliday

	return newHoliday, nil
}

// Deactivate implements holiday.HolidayRepository.
func (r *holidayRepository) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.rows[id]
	if !ok {
		return holiday.ErrHolidayNotFound
	}
	if !h.IsActive {
		return holiday.ErrHolidayAlreadyGone
	}

	h.IsActive = false
	h.UpdatedAt = r.now()
	r.rows[id] = h

	return nil
}
