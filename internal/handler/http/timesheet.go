package http

import (
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func parseMonth(r *http.Request) (timesheet.TimesheetRequest, error) {
	var errs validator.ValidationErrors
	req := timesheet.TimesheetRequest{
		Year:  queryInt(r, "year", &errs),
		Month: queryInt(r, "month", &errs),
	}
	return req, errs.Err()
}

// Get implements TimesheetHandler.
func (h *timesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req, err := parseMonth(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.timesheetService.GetTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Export implements TimesheetHandler.
func (h *timesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.timesheetService.ExportTimesheet(r.Context(), timesheet.ExportRequest{
		TimesheetRequest: month,
		Format:           timesheet.ExportFormat(r.URL.Query().Get("format")),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Data)
}
