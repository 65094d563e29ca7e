package employee

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_GetBadge(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Name: "Alice", MemberCode: "EMP-001"})
	require.NoError(t, err)

	badge, err := svc.GetBadge(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, badge.Employee.ID)
	assert.Equal(t, employee.BadgePayload{EmployeeID: created.ID, MemberCode: "EMP-001", Name: "Alice"}, badge.QRData)
	assert.Equal(t, "Alice (EMP-001)", badge.Label)

	// the QR text must decode as a scan request
	var scan timeentry.ScanRequest
	require.NoError(t, json.Unmarshal([]byte(badge.QRText), &scan))
	assert.Equal(t, created.ID, scan.EmployeeID)
	assert.Equal(t, "EMP-001", scan.MemberCode)
	assert.NoError(t, scan.Validate())
}

func TestEmployeeService_GetBadge_Errors(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	svc := NewEmployeeService(repo)

	var errs validator.ValidationErrors
	_, err := svc.GetBadge(ctx, "not-a-uuid")
	assert.ErrorAs(t, err, &errs)

	_, err = svc.GetBadge(ctx, "5f0c1c2e-8d7a-4a43-9d7e-3c1b2a9f0e11")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Name: "Bob", MemberCode: "EMP-002"})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateEmployee(ctx, created.ID))

	_, err = svc.GetBadge(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}
