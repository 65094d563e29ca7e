package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeInactive        = errors.New("employee is inactive")
	ErrMemberCodeExists        = errors.New("member code already exists")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
