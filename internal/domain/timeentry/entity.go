package timeentry

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/overtime"
	"github.com/shopspring/decimal"
)

// TimeEntry is one worked shift. It is created open (ClockOut nil) on
// clock-in and closed exactly once on clock-out, when TotalHours and the
// four categories are fixed.
type TimeEntry struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	EntryDate  time.Time // civil date the shift is attributed to

	TotalHours           decimal.NullDecimal
	RegularHours         decimal.Decimal
	DailyOTHours         decimal.Decimal
	RestDayOTHours       decimal.Decimal
	PublicHolidayOTHours decimal.Decimal
	IsRestDay            bool
	IsPublicHoliday      bool

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
	MemberCode   *string
}

func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// Breakdown returns the stored categories.
func (e TimeEntry) Breakdown() overtime.Breakdown {
	return overtime.Breakdown{
		RegularHours:         e.RegularHours,
		DailyOTHours:         e.DailyOTHours,
		RestDayOTHours:       e.RestDayOTHours,
		PublicHolidayOTHours: e.PublicHolidayOTHours,
	}
}

// ApplyBreakdown overwrites the categories and day flags.
func (e *TimeEntry) ApplyBreakdown(b overtime.Breakdown, day overtime.DayContext) {
	e.RegularHours = b.RegularHours
	e.DailyOTHours = b.DailyOTHours
	e.RestDayOTHours = b.RestDayOTHours
	e.PublicHolidayOTHours = b.PublicHolidayOTHours
	e.IsRestDay = day.IsRestDay
	e.IsPublicHoliday = day.IsPublicHoliday
}
