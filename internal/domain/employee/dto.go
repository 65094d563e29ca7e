package employee

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	MemberCode string  `json:"member_code"`
	UserID     *string `json:"user_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 120 {
		errs.Add("name", "name must not exceed 120 characters")
	}

	if validator.IsEmpty(r.MemberCode) {
		errs.Add("member_code", "member_code is required")
	} else if !validator.IsValidMemberCode(r.MemberCode) {
		errs.Add("member_code", "member_code must be 1-32 letters, digits, '.', '_' or '-'")
	}

	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs.Add("user_id", "user_id must not be blank when provided")
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	MemberCode string  `json:"member_code"`
	UserID     *string `json:"user_id,omitempty"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
}

// BadgePayload is what an employee badge QR code encodes. Scanning the
// code posts it back unchanged to the scan endpoint.
type BadgePayload struct {
	EmployeeID string `json:"employee_id"`
	MemberCode string `json:"member_code"`
	Name       string `json:"name,omitempty"`
}

type BadgeResponse struct {
	Employee EmployeeResponse `json:"employee"`
	QRData   BadgePayload     `json:"qr_data"`
	QRText   string           `json:"qr_text"` // the string to render as the QR code
	Label    string           `json:"label"`   // printed under the code
}

func ToBadge(e Employee) (BadgeResponse, error) {
	payload := BadgePayload{EmployeeID: e.ID, MemberCode: e.MemberCode, Name: e.Name}
	text, err := json.Marshal(payload)
	if err != nil {
		return BadgeResponse{}, fmt.Errorf("failed to encode badge: %w", err)
	}

	return BadgeResponse{
		Employee: ToResponse(e),
		QRData:   payload,
		QRText:   string(text),
		Label:    fmt.Sprintf("%s (%s)", e.Name, e.MemberCode),
	}, nil
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		MemberCode: e.MemberCode,
		UserID:     e.UserID,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
