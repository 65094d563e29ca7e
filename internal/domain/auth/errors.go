package auth

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminRequired      = errors.New("admin privilege required")
	ErrEmployeeScope      = errors.New("employees may only act on their own records")
	ErrEmployeeClaimEmpty = errors.New("token carries no employee_id")
)
