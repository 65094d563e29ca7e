package timeentry

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs.Add("notes", "notes must not exceed 500 characters")
	}

	return errs.Err()
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	return errs.Err()
}

// ScanRequest is the payload of an employee badge QR code.
type ScanRequest struct {
	EmployeeID string `json:"employee_id"`
	MemberCode string `json:"member_code"`
	Name       string `json:"name,omitempty"` // printed on the badge; not checked
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if validator.IsEmpty(r.MemberCode) {
		errs.Add("member_code", "member_code is required")
	}

	return errs.Err()
}

type ScanAction string

const (
	ScanActionClockIn  ScanAction = "in"
	ScanActionClockOut ScanAction = "out"
)

type ScanResponse struct {
	Action ScanAction        `json:"action"`
	Entry  TimeEntryResponse `json:"entry"`
}

type EntryFilter struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD

	date *time.Time
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if f.Date != nil && *f.Date != "" {
		if d, ok := validator.IsValidDate(*f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		} else {
			f.date = &d
		}
	}

	return errs.Err()
}

// ParsedDate is the optional civil date of a validated filter.
func (f *EntryFilter) ParsedDate() *time.Time {
	return f.date
}

type TimeEntryResponse struct {
	ID                   string   `json:"id"`
	EmployeeID           string   `json:"employee_id"`
	EmployeeName         *string  `json:"employee_name,omitempty"`
	MemberCode           *string  `json:"member_code,omitempty"`
	EntryDate            string   `json:"entry_date"`
	ClockInTime          string   `json:"clock_in_time"`
	ClockOutTime         *string  `json:"clock_out_time"`
	TotalHours           *float64 `json:"total_hours"`
	RegularHours         float64  `json:"regular_hours"`
	DailyOTHours         float64  `json:"daily_ot_hours"`
	RestDayOTHours       float64  `json:"rest_day_ot_hours"`
	PublicHolidayOTHours float64  `json:"public_holiday_ot_hours"`
	IsRestDay            bool     `json:"is_rest_day"`
	IsPublicHoliday      bool     `json:"is_public_holiday"`
	Notes                string   `json:"notes"`
}

func hoursValue(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:                   e.ID,
		EmployeeID:           e.EmployeeID,
		EmployeeName:         e.EmployeeName,
		MemberCode:           e.MemberCode,
		EntryDate:            e.EntryDate.Format(validator.DateLayout),
		ClockInTime:          e.ClockIn.UTC().Format(time.RFC3339),
		RegularHours:         hoursValue(e.RegularHours),
		DailyOTHours:         hoursValue(e.DailyOTHours),
		RestDayOTHours:       hoursValue(e.RestDayOTHours),
		PublicHolidayOTHours: hoursValue(e.PublicHolidayOTHours),
		IsRestDay:            e.IsRestDay,
		IsPublicHoliday:      e.IsPublicHoliday,
		Notes:                e.Notes,
	}
	if e.ClockOut != nil {
		out := e.ClockOut.UTC().Format(time.RFC3339)
		resp.ClockOutTime = &out
	}
	if e.TotalHours.Valid {
		total := hoursValue(e.TotalHours.Decimal)
		resp.TotalHours = &total
	}
	return resp
}
