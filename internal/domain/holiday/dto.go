package holiday

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"holiday_date"` // YYYY-MM-DD
	Name string `json:"name"`

	parsedDate time.Time
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs.Add("holiday_date", "holiday_date is required")
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("holiday_date", "holiday_date must be in YYYY-MM-DD format")
	} else {
		r.parsedDate = d
	}

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 120 {
		errs.Add("name", "name must not exceed 120 characters")
	}

	return errs.Err()
}

// ParsedDate is the civil date of a validated request.
func (r *CreateHolidayRequest) ParsedDate() time.Time {
	return r.parsedDate
}

// HolidayFilter selects a year; nil means the current one.
type HolidayFilter struct {
	Year *int `json:"year,omitempty"`
}

// ApplyDefaults fills an absent year from now.
func (f *HolidayFilter) ApplyDefaults(now time.Time) {
	if f.Year == nil {
		year := now.Year()
		f.Year = &year
	}
}

func (f *HolidayFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year == nil {
		errs.Add("year", "year is required")
	} else if !validator.IsValidYear(*f.Year) {
		errs.Add("year", "year must be between 1970 and 9999")
	}

	return errs.Err()
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"holiday_date"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID,
		Date:     h.Date.Format(validator.DateLayout),
		Name:     h.Name,
		IsActive: h.IsActive,
	}
}
