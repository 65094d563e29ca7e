package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

// TimesheetRequest selects a month. Nil fields mean "current", filled in
// by ApplyDefaults; an explicit zero is invalid.
type TimesheetRequest struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
}

// ApplyDefaults fills absent fields from now.
func (r *TimesheetRequest) ApplyDefaults(now time.Time) {
	if r.Year == nil {
		year := now.Year()
		r.Year = &year
	}
	if r.Month == nil {
		month := int(now.Month())
		r.Month = &month
	}
}

func (r *TimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year == nil {
		errs.Add("year", "year is required")
	} else if !validator.IsValidYear(*r.Year) {
		errs.Add("year", "year must be between 1970 and 9999")
	}
	if r.Month == nil {
		errs.Add("month", "month is required")
	} else if !validator.IsValidMonth(*r.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}

	return errs.Err()
}

// Period returns the validated year and month.
func (r *TimesheetRequest) Period() (int, time.Month) {
	return *r.Year, time.Month(*r.Month)
}

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

type ExportRequest struct {
	TimesheetRequest
	Format ExportFormat `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.TimesheetRequest.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}

	if r.Format == "" {
		r.Format = ExportFormatCSV
	}
	if !validator.IsInSlice(string(r.Format), []string{string(ExportFormatCSV), string(ExportFormatXLSX)}) {
		errs.Add("format", "format must be one of: csv, xlsx")
	}

	return errs.Err()
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ========================================
// REPORT
// ========================================

type TimesheetReport struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	MonthName   string `json:"month_name"`
	DaysInMonth int    `json:"days_in_month"`
	GeneratedAt string `json:"generated_at"`

	Employees       []employee.EmployeeResponse   `json:"employees"`
	Days            []DayResponse                 `json:"days"`
	TimeEntries     []timeentry.TimeEntryResponse `json:"time_entries"`
	Holidays        []holiday.HolidayResponse     `json:"holidays"`
	TimeOffRequests []timeoff.TimeOffResponse     `json:"time_off_requests"`

	Rows    []EmployeeRow `json:"rows"`
	Summary Summary       `json:"summary"`
}

type DayResponse struct {
	Date      string `json:"date"`
	DayNumber string `json:"day_number"` // zero-padded, "01".."31"
	DayName   string `json:"day_name"`   // "Mon".."Sun"
	IsWeekend bool   `json:"is_weekend"`
	IsHoliday bool   `json:"is_holiday"`
}

// EmployeeRow is one employee's line of the month grid.
type EmployeeRow struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Cells    []Cell                    `json:"cells"`
	Totals   HoursTotals               `json:"totals"`
}

// Cell is one employee-day. Flags are set whether or not an entry exists.
type Cell struct {
	Date      string                       `json:"date"`
	IsWeekend bool                         `json:"is_weekend"`
	IsHoliday bool                         `json:"is_holiday"`
	IsTimeOff bool                         `json:"is_time_off"`
	Entry     *timeentry.TimeEntryResponse `json:"entry,omitempty"`
}

type HoursTotals struct {
	TotalHours           float64 `json:"total_hours"`
	RegularHours         float64 `json:"regular_hours"`
	DailyOTHours         float64 `json:"daily_ot_hours"`
	RestDayOTHours       float64 `json:"rest_day_ot_hours"`
	PublicHolidayOTHours float64 `json:"public_holiday_ot_hours"`
	ClosedEntries        int     `json:"closed_entries"`
}

type Summary struct {
	EmployeeCount int         `json:"employee_count"`
	Totals        HoursTotals `json:"totals"`
}
