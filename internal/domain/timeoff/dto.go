package timeoff

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type CreateTimeOffRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	Reason     *string `json:"reason,omitempty"`

	start time.Time
	end   time.Time
}

func (r *CreateTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	startOK, endOK := false, false
	if d, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	} else {
		r.start, startOK = d, true
	}
	if d, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	} else {
		r.end, endOK = d, true
	}

	if startOK && endOK && r.end.Before(r.start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if r.Reason != nil && len(*r.Reason) > 500 {
		errs.Add("reason", "reason must not exceed 500 characters")
	}

	return errs.Err()
}

// Range returns the parsed civil dates of a validated request.
func (r *CreateTimeOffRequest) Range() (time.Time, time.Time) {
	return r.start, r.end
}

// MonthFilter selects a month; nil fields mean the current one.
type MonthFilter struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
}

// ApplyDefaults fills absent fields from now.
func (f *MonthFilter) ApplyDefaults(now time.Time) {
	if f.Year == nil {
		year := now.Year()
		f.Year = &year
	}
	if f.Month == nil {
		month := int(now.Month())
		f.Month = &month
	}
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year == nil {
		errs.Add("year", "year is required")
	} else if !validator.IsValidYear(*f.Year) {
		errs.Add("year", "year must be between 1970 and 9999")
	}
	if f.Month == nil {
		errs.Add("month", "month is required")
	} else if !validator.IsValidMonth(*f.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}

	return errs.Err()
}

type TimeOffResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
}

func ToResponse(r TimeOffRequest) TimeOffResponse {
	return TimeOffResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format(validator.DateLayout),
		EndDate:    r.EndDate.Format(validator.DateLayout),
		Status:     string(r.Status),
		Reason:     r.Reason,
	}
}
