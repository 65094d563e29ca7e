package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepository struct {
	mu   sync.RWMutex
	rows map[string]employee.Employee
	now  func() time.Time
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepository{rows: make(map[string]employee.Employee), now: time.Now}
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.rows))
	for _, emp := range r.rows {
		if emp.IsActive {
			employees = append(employees, emp)
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.rows[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository. Row locking is
// covered by the transactor mutex.
func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.rows {
		if emp.MemberCode == newEmployee.MemberCode {
			return employee.Employee{}, employee.ErrMemberCodeExists
		}
	}

	now := r.now()
	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	newEmployee.IsActive = true
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.rows[newEmployee.ID] = newEmployee

	return newEmployee, nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.rows[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}

	emp.IsActive = false
	emp.UpdatedAt = r.now()
	r.rows[id] = emp

	return nil
}
