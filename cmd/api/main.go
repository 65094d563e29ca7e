package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	appHTTP "github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/holiday"
	timeEntryService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timeentry"
	timeOffService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timeoff"
	timesheetService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/migrations"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	holidays  holiday.HolidayRepository
	timeOff   timeoff.TimeOffRepository
	entries   timeentry.TimeEntryRepository
	close     func()
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		slog.Warn("using in-memory storage; data is lost on restart")
		employees := memory.NewEmployeeRepository()
		return repositories{
			tx:        memory.NewTransactor(),
			employees: employees,
			holidays:  memory.NewHolidayRepository(),
			timeOff:   memory.NewTimeOffRepository(),
			entries:   memory.NewTimeEntryRepository(employees),
			close:     func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return repositories{}, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, migrations.FS); err != nil {
			db.Close()
			return repositories{}, err
		}
	}

	return repositories{
		tx:        postgresql.NewTransactor(db),
		employees: postgresql.NewEmployeeRepository(db),
		holidays:  postgresql.NewHolidayRepository(db),
		timeOff:   postgresql.NewTimeOffRepository(db),
		entries:   postgresql.NewTimeEntryRepository(db),
		close:     db.Close,
	}, nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.close()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(repos.employees)
	holidaySvc := holidayService.NewHolidayService(repos.holidays)
	timeOffSvc := timeOffService.NewTimeOffService(repos.timeOff, repos.employees)
	timeEntrySvc := timeEntryService.NewTimeEntryService(
		repos.tx,
		repos.entries,
		repos.employees,
		repos.holidays,
		timeEntryService.WithLocation(cfg.Location()),
	)
	timesheetSvc := timesheetService.NewTimesheetService(repos.employees, repos.holidays, repos.timeOff, repos.entries).
		WithLocation(cfg.Location())

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Holiday:   appHTTP.NewHolidayHandler(holidaySvc),
		TimeOff:   appHTTP.NewTimeOffHandler(timeOffSvc),
		TimeEntry: appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", cfg.Storage.Driver, "timezone", cfg.App.Timezone)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
