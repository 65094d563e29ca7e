package employee

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func validateID(id string) error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(id) {
		errs.Add("id", "id must be a valid UUID")
	}
	return errs.Err()
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if err := validateID(id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetBadge implements employee.EmployeeService. Inactive employees get no
// badge since a scan would be refused anyway.
func (s *EmployeeServiceImpl) GetBadge(ctx context.Context, id string) (employee.BadgeResponse, error) {
	if err := validateID(id); err != nil {
		return employee.BadgeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.BadgeResponse{}, err
	}
	if !emp.IsActive {
		return employee.BadgeResponse{}, employee.ErrEmployeeInactive
	}

	return employee.ToBadge(emp)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:       req.Name,
		MemberCode: req.MemberCode,
		UserID:     req.UserID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "member_code", created.MemberCode)
	return employee.ToResponse(created), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	slog.Info("employee deactivated", "employee_id", id)
	return nil
}
