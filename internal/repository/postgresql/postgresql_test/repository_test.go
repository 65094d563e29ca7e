package postgresql_test

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
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, repo employee.EmployeeRepository, name, code string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{Name: name, MemberCode: code})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	bob := createTestEmployee(t, repo, "Bob", "EMP-002")
	alice := createTestEmployee(t, repo, "Alice", "EMP-001")
	assert.True(t, alice.IsActive)

	t.Run("duplicate member code", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{Name: "Carol", MemberCode: "EMP-001"})
		assert.ErrorIs(t, err, employee.ErrMemberCodeExists)
	})

	t.Run("list active sorted by name", func(t *testing.T) {
		list, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, alice.ID, list[0].ID)
		assert.Equal(t, bob.ID, list[1].ID)
	})

	t.Run("deactivate hides employee", func(t *testing.T) {
		require.NoError(t, repo.Deactivate(ctx, bob.ID))

		list, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		got, err := repo.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestHolidayRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewHolidayRepository(setup.DB)

	newYear, err := repo.Create(ctx, holiday.Holiday{Date: calendar.Date(2024, time.January, 1), Name: "New Year"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{Date: calendar.Date(2024, time.January, 1), Name: "Again"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateTaken)

	is, err := repo.IsHoliday(ctx, calendar.Date(2024, time.January, 1))
	require.NoError(t, err)
	assert.True(t, is)

	require.NoError(t, repo.Deactivate(ctx, newYear.ID))
	assert.ErrorIs(t, repo.Deactivate(ctx, newYear.ID), holiday.ErrHolidayAlreadyGone)

	is, err = repo.IsHoliday(ctx, calendar.Date(2024, time.January, 1))
	require.NoError(t, err)
	assert.False(t, is)

	// The date is free again once the holiday is gone.
	_, err = repo.Create(ctx, holiday.Holiday{Date: calendar.Date(2024, time.January, 1), Name: "New Year"})
	require.NoError(t, err)

	list, err := repo.ListActiveInMonth(ctx, 2024, time.January)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTimeOffRepository_ApprovedOverlapping(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, postgresql.NewEmployeeRepository(setup.DB), "Alice", "EMP-001")
	repo := postgresql.NewTimeOffRepository(setup.DB)

	spanning, err := repo.Create(ctx, timeoff.TimeOffRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.Date(2024, time.January, 30),
		EndDate:    calendar.Date(2024, time.February, 2),
		Status:     timeoff.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusPending, spanning.Status)

	_, err = repo.Create(ctx, timeoff.TimeOffRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.Date(2024, time.February, 10),
		EndDate:    calendar.Date(2024, time.February, 10),
		Status:     timeoff.StatusPending,
	})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, spanning.ID, timeoff.StatusApproved)
	require.NoError(t, err)

	approved, err := repo.ListApprovedOverlapping(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, spanning.ID, approved[0].ID)
	assert.True(t, approved[0].Covers(calendar.Date(2024, time.February, 1)))
}

func TestTimeEntryRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, postgresql.NewEmployeeRepository(setup.DB), "Alice", "EMP-001")
	repo := postgresql.NewTimeEntryRepository(setup.DB)

	clockIn := time.Date(2024, time.February, 5, 8, 0, 0, 0, time.UTC)
	opened, err := repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID: emp.ID,
		ClockIn:    clockIn,
		EntryDate:  calendar.Date(2024, time.February, 5),
		Notes:      "front desk",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, opened.ID)
	assert.Equal(t, emp.ID, opened.EmployeeID)
	assert.Equal(t, "front desk", opened.Notes)
	assert.True(t, opened.IsOpen())
	require.NotNil(t, opened.MemberCode)
	assert.Equal(t, "EMP-001", *opened.MemberCode)

	t.Run("second open entry rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, timeentry.TimeEntry{
			EmployeeID: emp.ID,
			ClockIn:    clockIn.Add(time.Hour),
			EntryDate:  calendar.Date(2024, time.February, 5),
		})
		assert.ErrorIs(t, err, timeentry.ErrAlreadyClockedIn)
	})

	got, err := repo.GetOpenByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, opened.ID, got.ID)

	clockOut := clockIn.Add(10*time.Hour + 30*time.Minute)
	got.ClockOut = &clockOut
	got.TotalHours = decimal.NewNullDecimal(decimal.RequireFromString("10.5"))
	got.RegularHours = decimal.NewFromInt(8)
	got.DailyOTHours = decimal.RequireFromString("2.5")

	closed, err := repo.Close(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, opened.ID, closed.ID)
	assert.False(t, closed.IsOpen())
	assert.True(t, closed.TotalHours.Decimal.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, closed.DailyOTHours.Equal(decimal.RequireFromString("2.5")))

	t.Run("closing twice", func(t *testing.T) {
		_, err := repo.Close(ctx, got)
		assert.ErrorIs(t, err, timeentry.ErrNoActiveEntry)
	})

	t.Run("no open entry", func(t *testing.T) {
		_, err := repo.GetOpenByEmployee(ctx, emp.ID)
		assert.ErrorIs(t, err, timeentry.ErrNoActiveEntry)
	})

	t.Run("listing", func(t *testing.T) {
		start, end := calendar.MonthBounds(2024, time.February)
		inMonth, err := repo.ListByDateRange(ctx, start, end)
		require.NoError(t, err)
		assert.Len(t, inMonth, 1)

		day := calendar.Date(2024, time.February, 6)
		none, err := repo.ListByEmployee(ctx, emp.ID, &day)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestTimeEntryRepository_WritesReturnOwnRow(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	alice := createTestEmployee(t, employees, "Alice", "EMP-001")
	bob := createTestEmployee(t, employees, "Bob", "EMP-002")
	repo := postgresql.NewTimeEntryRepository(setup.DB)

	day := calendar.Date(2024, time.February, 5)
	clockIn := time.Date(2024, time.February, 5, 8, 0, 0, 0, time.UTC)

	aliceEntry, err := repo.Create(ctx, timeentry.TimeEntry{EmployeeID: alice.ID, ClockIn: clockIn, EntryDate: day})
	require.NoError(t, err)

	bobEntry, err := repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID: bob.ID,
		ClockIn:    clockIn.Add(time.Hour),
		EntryDate:  day,
		Notes:      "late start",
	})
	require.NoError(t, err)
	assert.NotEqual(t, aliceEntry.ID, bobEntry.ID)
	assert.Equal(t, bob.ID, bobEntry.EmployeeID)
	assert.Equal(t, "late start", bobEntry.Notes)
	require.NotNil(t, bobEntry.EmployeeName)
	assert.Equal(t, "Bob", *bobEntry.EmployeeName)

	clockOut := clockIn.Add(9 * time.Hour)
	bobEntry.ClockOut = &clockOut
	bobEntry.TotalHours = decimal.NewNullDecimal(decimal.NewFromInt(8))
	bobEntry.RegularHours = decimal.NewFromInt(8)

	closed, err := repo.Close(ctx, bobEntry)
	require.NoError(t, err)
	assert.Equal(t, bobEntry.ID, closed.ID)
	assert.Equal(t, bob.ID, closed.EmployeeID)
	assert.False(t, closed.IsOpen())

	stillOpen, err := repo.GetOpenByEmployee(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, aliceEntry.ID, stillOpen.ID)
}

func TestTimeEntryRepository_ConcurrentClockIn(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	emp := createTestEmployee(t, employees, "Alice", "EMP-001")
	repo := postgresql.NewTimeEntryRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		clocked int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
				if _, err := employees.GetByIDForUpdate(ctx, emp.ID); err != nil {
					return err
				}
				if _, err := repo.GetOpenByEmployee(ctx, emp.ID); err == nil {
					return timeentry.ErrAlreadyClockedIn
				}
				_, err := repo.Create(ctx, timeentry.TimeEntry{
					EmployeeID: emp.ID,
					ClockIn:    time.Now(),
					EntryDate:  calendar.DateOf(time.Now(), time.UTC),
				})
				return err
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, timeentry.ErrAlreadyClockedIn):
				clocked++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, clocked)
}
