package employee

import "context"

type EmployeeService interface {
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, id string) error
	GetBadge(ctx context.Context, id string) (BadgeResponse, error)
}
