// Package calendar works with civil dates: calendar days with no time of
// day, represented as midnight UTC so that equality and weekday are
// independent of the server's location.
package calendar

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/overtime"
)

const DateLayout = "2006-01-02"

// Date returns the civil date y-m-d.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the civil date that instant t falls on in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return Date(local.Year(), local.Month(), local.Day())
}

// Normalize drops the time of day and location of d, keeping its
// wall-clock calendar date.
func Normalize(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), d.Day())
}

// Key formats a civil date as YYYY-MM-DD.
func Key(d time.Time) string {
	return d.Format(DateLayout)
}

// DaysIn returns the number of days in the month, leap years included.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// MonthBounds returns the first and last civil dates of the month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := Date(year, month, 1)
	return first, Date(year, month, DaysIn(year, month))
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Day describes one calendar day of a month grid.
type Day struct {
	Date      time.Time
	DayNumber int
	Weekday   time.Weekday
	IsWeekend bool
	IsHoliday bool
}

// DayName is the short English weekday name, e.g. "Mon".
func (d Day) DayName() string {
	return d.Weekday.String()[:3]
}

// MonthGrid generates one Day per calendar date of the month, ascending.
// holidays is keyed by Key(date); a date is a holiday only when its value
// is true, so a missing key or a false value means a working day.
func MonthGrid(year int, month time.Month, holidays map[string]bool) []Day {
	n := DaysIn(year, month)
	days := make([]Day, 0, n)
	for i := 1; i <= n; i++ {
		date := Date(year, month, i)
		days = append(days, Day{
			Date:      date,
			DayNumber: i,
			Weekday:   date.Weekday(),
			IsWeekend: overtime.IsRestDay(date.Weekday()),
			IsHoliday: holidays[Key(date)],
		})
	}
	return days
}
