package http

import (
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TimeOffHandler interface {
	ListApproved(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type timeOffHandlerImpl struct {
	timeOffService timeoff.TimeOffService
}

func NewTimeOffHandler(timeOffService timeoff.TimeOffService) TimeOffHandler {
	return &timeOffHandlerImpl{timeOffService: timeOffService}
}

// ListApproved implements TimeOffHandler.
func (h *timeOffHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := timeoff.MonthFilter{
		Year:  queryInt(r, "year", &errs),
		Month: queryInt(r, "month", &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.timeOffService.ListApproved(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, &response.Meta{TotalItems: len(requests)})
}

// Create implements TimeOffHandler.
func (h *timeOffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeoff.CreateTimeOffRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	if err := scopeEmployee(r, &req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeOffService.CreateTimeOff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time-off request submitted", result)
}

// Approve implements TimeOffHandler.
func (h *timeOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.ApproveTimeOff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request approved", result)
}

// Reject implements TimeOffHandler.
func (h *timeOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.RejectTimeOff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request rejected", result)
}
