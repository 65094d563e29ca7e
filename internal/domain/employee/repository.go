package employee

import "context"

// EmployeeRepository is the employee directory backing store.
type EmployeeRepository interface {
	// ListActive returns active employees ordered by name, then id.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByIDForUpdate is GetByID that also holds the employee row until the
	// surrounding transaction ends, serializing clock actions per employee.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// Create returns ErrMemberCodeExists when the code is taken.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	Deactivate(ctx context.Context, id string) error
}
