package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads exactly one JSON object into dst. Unknown fields and
// trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// queryInt parses an optional integer query parameter. It returns nil when
// the parameter is absent; an empty value counts as absent too.
func queryInt(r *http.Request, name string, errs *validator.ValidationErrors) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, name+" must be a number")
		return nil
	}
	return &v
}

// scopeEmployee fills an empty employee id with the caller's own and checks
// the caller may act for it.
func scopeEmployee(r *http.Request, employeeID *string) error {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return auth.ErrInvalidToken
	}
	if *employeeID == "" && !principal.IsAdmin() {
		*employeeID = principal.EmployeeID
	}
	if *employeeID != "" && !principal.CanActFor(*employeeID) {
		return auth.ErrEmployeeScope
	}
	return nil
}
