package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrEmployeeClaimEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminRequired), errors.Is(err, auth.ErrEmployeeScope):
		Forbidden(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")
	case errors.Is(err, employee.ErrMemberCodeExists):
		Conflict(w, "Member code already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Holiday
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateTaken):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, holiday.ErrHolidayAlreadyGone):
		Conflict(w, "Holiday is already inactive")

	// Time off
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, "Time-off request not found")
	case errors.Is(err, timeoff.ErrTimeOffAlreadyProcessed):
		Conflict(w, "Time-off request already processed")

	// Time entries
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		writeError(w, http.StatusConflict, "ALREADY_CLOCKED_IN", "Employee is already clocked in")
	case errors.Is(err, timeentry.ErrNoActiveEntry):
		writeError(w, http.StatusNotFound, "NO_ACTIVE_ENTRY", "No active time entry found")
	case errors.Is(err, timeentry.ErrAnomalousDuration):
		writeError(w, http.StatusUnprocessableEntity, "ANOMALOUS_DURATION", "Clock-out is not after clock-in; the entry was left open")
	case errors.Is(err, timeentry.ErrMemberCodeMismatch):
		Forbidden(w, "Member code does not match employee")

	// Timesheet
	case errors.Is(err, timesheet.ErrIncompleteReport):
		slog.Error("timesheet report failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INCOMPLETE_REPORT", "Timesheet data could not be loaded")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
