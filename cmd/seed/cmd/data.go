package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/overtime"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/postgresql"
	timeEntryService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timeentry"
	timeOffService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/migrations"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type DataOptions struct {
	Employees   int
	Year        int
	Month       int
	Seed        int64
	Concurrency int
	TimeOffRate int
}

var dopts DataOptions

var dataCmd = &cobra.Command{
	Use:   "data [flags]",
	Short: "Create employees, default holidays and a month of clocked shifts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runData(cmd.Context(), dopts)
	},
}

func init() {
	now := time.Now()
	dataCmd.Flags().IntVarP(&dopts.Employees, "employees", "e", 10, "Number of employees to create")
	dataCmd.Flags().IntVarP(&dopts.Year, "year", "y", now.Year(), "Year of the generated shifts")
	dataCmd.Flags().IntVarP(&dopts.Month, "month", "m", int(now.Month()), "Month of the generated shifts")
	dataCmd.Flags().Int64VarP(&dopts.Seed, "seed", "s", now.UnixNano(), "Random seed")
	dataCmd.Flags().IntVarP(&dopts.Concurrency, "concurrency", "c", 4, "Employees clocked in parallel")
	dataCmd.Flags().IntVar(&dopts.TimeOffRate, "time-off-rate", 30, "Percentage of employees given a time-off request")
}

// shift is one generated clock-in/clock-out pair.
type shift struct {
	in, out time.Time
}

// settableClock lets the ledger run with generated timestamps.
type settableClock struct {
	now time.Time
}

func (c *settableClock) Now() time.Time { return c.now }

func runData(ctx context.Context, opts DataOptions) error {
	if opts.Month < 1 || opts.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("seeding needs STORAGE_DRIVER=%s", config.StorageDriverPostgres)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, migrations.FS); err != nil {
		return err
	}

	gofakeit.Seed(opts.Seed)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	entryRepo := postgresql.NewTimeEntryRepository(db)
	tx := postgresql.NewTransactor(db)
	timeOff := timeOffService.NewTimeOffService(postgresql.NewTimeOffRepository(db), employeeRepo)

	created, err := fixtures.SeedHolidays(ctx, holidayRepo, opts.Year)
	if err != nil {
		return err
	}
	slog.Info("holidays seeded", "year", opts.Year, "created", created)

	employees, err := createEmployees(ctx, employeeRepo, opts.Employees)
	if err != nil {
		return err
	}

	month := time.Month(opts.Month)
	loc := cfg.Location()
	schedules := make([][]shift, len(employees))
	for i, emp := range employees {
		off, err := requestTimeOff(ctx, timeOff, emp, opts.Year, month, opts.TimeOffRate)
		if err != nil {
			return err
		}
		schedules[i] = generateShifts(opts.Year, month, loc, time.Now(), off)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Concurrency))
	for i, emp := range employees {
		emp, shifts := emp, schedules[i]
		g.Go(func() error {
			return clockShifts(gctx, tx, entryRepo, employeeRepo, holidayRepo, loc, emp, shifts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("seed complete", "employees", len(employees), "year", opts.Year, "month", opts.Month)
	return nil
}

func createEmployees(ctx context.Context, repo employee.EmployeeRepository, n int) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0, n)
	for len(employees) < n {
		emp, err := repo.Create(ctx, employee.Employee{
			Name:       gofakeit.Name(),
			MemberCode: fmt.Sprintf("EMP-%05d", gofakeit.Number(1, 99999)),
		})
		if errors.Is(err, employee.ErrMemberCodeExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// requestTimeOff files a one to three day request for rate percent of
// employees and decides it. Approved days are returned so no shift is
// generated on them.
func requestTimeOff(ctx context.Context, svc timeoff.TimeOffService, emp employee.Employee, year int, month time.Month, rate int) (map[int]bool, error) {
	if gofakeit.Number(1, 100) > rate {
		return nil, nil
	}

	days := calendar.DaysIn(year, month)
	first := gofakeit.Number(1, days)
	last := min(days, first+gofakeit.Number(0, 2))
	reason := gofakeit.Sentence(6)

	created, err := svc.CreateTimeOff(ctx, timeoff.CreateTimeOffRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.Key(calendar.Date(year, month, first)),
		EndDate:    calendar.Key(calendar.Date(year, month, last)),
		Reason:     &reason,
	})
	if err != nil {
		return nil, fmt.Errorf("create time off for %s: %w", emp.MemberCode, err)
	}

	if gofakeit.Number(1, 5) == 1 {
		if _, err := svc.RejectTimeOff(ctx, created.ID); err != nil {
			return nil, fmt.Errorf("reject time off %s: %w", created.ID, err)
		}
		return nil, nil
	}
	if _, err := svc.ApproveTimeOff(ctx, created.ID); err != nil {
		return nil, fmt.Errorf("approve time off %s: %w", created.ID, err)
	}

	off := make(map[int]bool, last-first+1)
	for d := first; d <= last; d++ {
		off[d] = true
	}
	return off, nil
}

// generateShifts draws shifts for the workdays of the month, with the odd
// weekend shift, stopping before until. Days in off are skipped.
func generateShifts(year int, month time.Month, loc *time.Location, until time.Time, off map[int]bool) []shift {
	var shifts []shift
	for _, day := range calendar.MonthGrid(year, month, nil) {
		if off[day.DayNumber] {
			continue
		}
		if day.IsWeekend && gofakeit.Number(1, 10) > 1 {
			continue
		}
		if !day.IsWeekend && gofakeit.Number(1, 20) == 1 {
			continue
		}

		start := time.Date(year, month, day.DayNumber, 7, 30, 0, 0, loc).
			Add(time.Duration(gofakeit.Number(0, 120)) * time.Minute)
		end := start.Add(time.Duration(gofakeit.Number(6*60, 11*60)) * time.Minute)
		if end.After(until) {
			break
		}
		shifts = append(shifts, shift{in: start, out: end})
	}
	return shifts
}

func clockShifts(
	ctx context.Context,
	tx database.Transactor,
	entries timeentry.TimeEntryRepository,
	employees employee.EmployeeRepository,
	holidays holiday.HolidayCalendar,
	loc *time.Location,
	emp employee.Employee,
	shifts []shift,
) error {
	clock := &settableClock{}
	ledger := timeEntryService.NewTimeEntryService(tx, entries, employees, holidays,
		timeEntryService.WithClock(clock.Now),
		timeEntryService.WithLocation(loc),
	)

	total := decimal.Zero
	for _, s := range shifts {
		clock.now = s.in
		if _, err := ledger.ClockIn(ctx, timeentry.ClockInRequest{EmployeeID: emp.ID}); err != nil {
			return fmt.Errorf("clock in %s: %w", emp.MemberCode, err)
		}

		clock.now = s.out
		closed, err := ledger.ClockOut(ctx, timeentry.ClockOutRequest{EmployeeID: emp.ID})
		if err != nil {
			return fmt.Errorf("clock out %s: %w", emp.MemberCode, err)
		}
		if closed.TotalHours != nil {
			total = total.Add(decimal.NewFromFloat(*closed.TotalHours))
		}
	}

	slog.Info("shifts seeded",
		"employee_id", emp.ID,
		"member_code", emp.MemberCode,
		"shifts", len(shifts),
		"hours", total.StringFixed(overtime.HoursPrecision),
	)
	return nil
}
