package http

import (
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// List implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.EntryFilter{EmployeeID: r.URL.Query().Get("employee_id")}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if err := scopeEmployee(r, &filter.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.timeEntryService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, &response.Meta{TotalItems: len(entries)})
}

// ClockIn implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	if err := scopeEmployee(r, &req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeEntryService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockOutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	if err := scopeEmployee(r, &req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeEntryService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Scan implements TimeEntryHandler. The body is the decoded badge QR code.
func (h *timeEntryHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ScanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid QR code payload", map[string]string{"body": err.Error()})
		return
	}
	if err := scopeEmployee(r, &req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeEntryService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Action == timeentry.ScanActionClockIn {
		response.Created(w, "Clock in successful", result)
		return
	}
	response.SuccessWithMessage(w, "Clock out successful", result)
}
