package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()

	bob, err := repo.Create(ctx, employee.Employee{Name: "Bob", MemberCode: "EMP-002"})
	require.NoError(t, err)
	alice, err := repo.Create(ctx, employee.Employee{Name: "Alice", MemberCode: "EMP-001"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{Name: "Carol", MemberCode: "EMP-001"})
	assert.ErrorIs(t, err, employee.ErrMemberCodeExists)

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, alice.ID, list[0].ID)

	require.NoError(t, repo.Deactivate(ctx, bob.ID))
	assert.ErrorIs(t, repo.Deactivate(ctx, bob.ID), employee.ErrEmployeeAlreadyInactive)

	list, err = repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestHolidayRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHolidayRepository()
	day := calendar.Date(2024, time.August, 17)

	h, err := repo.Create(ctx, holiday.Holiday{Date: day.Add(15 * time.Hour), Name: "Independence Day"})
	require.NoError(t, err)
	assert.True(t, h.Date.Equal(day), "date is normalized to midnight")

	_, err = repo.Create(ctx, holiday.Holiday{Date: day, Name: "Duplicate"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateTaken)

	require.NoError(t, repo.Deactivate(ctx, h.ID))
	assert.ErrorIs(t, repo.Deactivate(ctx, h.ID), holiday.ErrHolidayAlreadyGone)
	assert.ErrorIs(t, repo.Deactivate(ctx, "missing"), holiday.ErrHolidayNotFound)

	is, err := repo.IsHoliday(ctx, day)
	require.NoError(t, err)
	assert.False(t, is)

	_, err = repo.Create(ctx, holiday.Holiday{Date: day, Name: "Independence Day"})
	require.NoError(t, err)

	inYear, err := repo.ListActiveInYear(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, inYear, 1)
}

func TestTimeOffRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTimeOffRepository()

	spanning, err := repo.Create(ctx, timeoff.TimeOffRequest{
		EmployeeID: "e1",
		StartDate:  calendar.Date(2024, time.January, 30),
		EndDate:    calendar.Date(2024, time.February, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusPending, spanning.Status)

	pending, err := repo.Create(ctx, timeoff.TimeOffRequest{
		EmployeeID: "e1",
		StartDate:  calendar.Date(2024, time.February, 12),
		EndDate:    calendar.Date(2024, time.February, 12),
	})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, spanning.ID, timeoff.StatusApproved)
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, spanning.ID, timeoff.StatusRejected)
	assert.ErrorIs(t, err, timeoff.ErrTimeOffAlreadyProcessed)

	approved, err := repo.ListApprovedOverlapping(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, spanning.ID, approved[0].ID)
	assert.NotEqual(t, pending.ID, approved[0].ID)

	march, err := repo.ListApprovedOverlapping(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Empty(t, march)
}

func TestTimeEntryRepository(t *testing.T) {
	ctx := context.Background()
	employees := memory.NewEmployeeRepository()
	emp, err := employees.Create(ctx, employee.Employee{Name: "Alice", MemberCode: "EMP-001"})
	require.NoError(t, err)
	repo := memory.NewTimeEntryRepository(employees)

	clockIn := time.Date(2024, time.February, 5, 8, 0, 0, 0, time.UTC)
	opened, err := repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID: emp.ID,
		ClockIn:    clockIn,
		EntryDate:  calendar.Date(2024, time.February, 5),
	})
	require.NoError(t, err)
	require.NotNil(t, opened.EmployeeName)
	assert.Equal(t, "Alice", *opened.EmployeeName)

	_, err = repo.Create(ctx, timeentry.TimeEntry{EmployeeID: emp.ID, ClockIn: clockIn.Add(time.Hour)})
	assert.ErrorIs(t, err, timeentry.ErrAlreadyClockedIn)

	clockOut := clockIn.Add(8 * time.Hour)
	opened.ClockOut = &clockOut
	closed, err := repo.Close(ctx, opened)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())

	_, err = repo.Close(ctx, opened)
	assert.ErrorIs(t, err, timeentry.ErrNoActiveEntry)

	_, err = repo.GetOpenByEmployee(ctx, emp.ID)
	assert.ErrorIs(t, err, timeentry.ErrNoActiveEntry)

	second, err := repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID: emp.ID,
		ClockIn:    clockIn.Add(24 * time.Hour),
		EntryDate:  calendar.Date(2024, time.February, 6),
	})
	require.NoError(t, err)

	byEmployee, err := repo.ListByEmployee(ctx, emp.ID, nil)
	require.NoError(t, err)
	require.Len(t, byEmployee, 2)
	assert.Equal(t, second.ID, byEmployee[0].ID, "newest first")

	day := calendar.Date(2024, time.February, 5)
	onDay, err := repo.ListByEmployee(ctx, emp.ID, &day)
	require.NoError(t, err)
	assert.Len(t, onDay, 1)

	inRange, err := repo.ListByDateRange(ctx, calendar.Date(2024, time.February, 1), calendar.Date(2024, time.February, 5))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, opened.ID, inRange[0].ID)
}

func TestTransactor_SerializesAndNests(t *testing.T) {
	tx := memory.NewTransactor()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.WithinTransaction(ctx, func(ctx context.Context) error {
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)

	errBoom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return errBoom
		})
	})
	assert.ErrorIs(t, err, errBoom)
}
