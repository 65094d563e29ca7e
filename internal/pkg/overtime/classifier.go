// Package overtime splits worked hours into payroll categories. The same
// Classify function serves clock-out and timesheet reporting so both paths
// always agree.
package overtime

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DailyThreshold is the number of weekday hours paid as regular time.
var DailyThreshold = decimal.NewFromInt(8)

var ErrNegativeHours = errors.New("worked hours must not be negative")

// DayContext describes the calendar facts of the day a shift is attributed to.
type DayContext struct {
	IsRestDay       bool
	IsPublicHoliday bool
}

// Breakdown holds the four hour categories of a closed shift.
type Breakdown struct {
	RegularHours         decimal.Decimal
	DailyOTHours         decimal.Decimal
	RestDayOTHours       decimal.Decimal
	PublicHolidayOTHours decimal.Decimal
}

// Total is the sum of all four categories.
func (b Breakdown) Total() decimal.Decimal {
	return b.RegularHours.Add(b.DailyOTHours).Add(b.RestDayOTHours).Add(b.PublicHolidayOTHours)
}

// Add returns the category-wise sum of b and o.
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		RegularHours:         b.RegularHours.Add(o.RegularHours),
		DailyOTHours:         b.DailyOTHours.Add(o.DailyOTHours),
		RestDayOTHours:       b.RestDayOTHours.Add(o.RestDayOTHours),
		PublicHolidayOTHours: b.PublicHolidayOTHours.Add(o.PublicHolidayOTHours),
	}
}

// IsRestDay reports whether w is a designated rest day.
func IsRestDay(w time.Weekday) bool {
	return w == time.Saturday || w == time.Sunday
}

// Classify maps worked hours onto the categories. Precedence is strict:
// public holiday, then rest day, then the weekday threshold split. A holiday
// on a Saturday is holiday overtime only.
//
// totalHours is expected to be rounded already; every bucket is derived from
// it by exact decimal arithmetic, so Breakdown.Total() == totalHours.
func Classify(totalHours decimal.Decimal, day DayContext) (Breakdown, error) {
	if totalHours.IsNegative() {
		return Breakdown{}, ErrNegativeHours
	}

	b := Breakdown{
		RegularHours:         decimal.Zero,
		DailyOTHours:         decimal.Zero,
		RestDayOTHours:       decimal.Zero,
		PublicHolidayOTHours: decimal.Zero,
	}

	switch {
	case day.IsPublicHoliday:
		b.PublicHolidayOTHours = totalHours
	case day.IsRestDay:
		b.RestDayOTHours = totalHours
	default:
		b.RegularHours = decimal.Min(totalHours, DailyThreshold)
		b.DailyOTHours = decimal.Max(decimal.Zero, totalHours.Sub(DailyThreshold))
	}

	return b, nil
}
