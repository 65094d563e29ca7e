// Package fixtures seeds reference data into a fresh installation.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
)

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// Fixed-date national holidays. Lunar and movable holidays change every year
// and are declared by an administrator.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.May, 1, "International Labour Day"},
	{time.June, 1, "Pancasila Day"},
	{time.August, 17, "Independence Day"},
	{time.December, 25, "Christmas Day"},
}

// DefaultHolidays returns the fixed-date holidays of year in date order.
func DefaultHolidays(year int) []holiday.Holiday {
	holidays := make([]holiday.Holiday, 0, len(fixedHolidays))
	for _, h := range fixedHolidays {
		holidays = append(holidays, holiday.Holiday{
			Date: calendar.Date(year, h.month, h.day),
			Name: h.name,
		})
	}
	return holidays
}

// SeedHolidays declares the default holidays of year, skipping dates that
// already have an active holiday. It returns how many were created.
func SeedHolidays(ctx context.Context, repo holiday.HolidayRepository, year int) (int, error) {
	created := 0
	for _, h := range DefaultHolidays(year) {
		if _, err := repo.Create(ctx, h); err != nil {
			if errors.Is(err, holiday.ErrHolidayDateTaken) {
				continue
			}
			return created, fmt.Errorf("seed holiday %s: %w", calendar.Key(h.Date), err)
		}
		created++
	}
	return created, nil
}
