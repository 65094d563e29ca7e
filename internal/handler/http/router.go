package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Employee  EmployeeHandler
	Holiday   HolidayHandler
	TimeOff   TimeOffHandler
	TimeEntry TimeEntryHandler
	Timesheet TimesheetHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Route("/time-entries", func(r chi.Router) {
			r.Get("/", h.TimeEntry.List)
			r.Post("/clock-in", h.TimeEntry.ClockIn)
			r.Post("/clock-out", h.TimeEntry.ClockOut)
			r.Post("/scan", h.TimeEntry.Scan)
		})

		r.Route("/time-off", func(r chi.Router) {
			r.Get("/", h.TimeOff.ListApproved)
			r.Post("/", h.TimeOff.Create)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/{id}/approve", h.TimeOff.Approve)
				r.Post("/{id}/reject", h.TimeOff.Reject)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Holiday.Create)
				r.Delete("/{id}", h.Holiday.Delete)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)
			r.Get("/{id}/badge", h.Employee.Badge)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Employee.Create)
				r.Post("/{id}/deactivate", h.Employee.Deactivate)
			})
		})

		r.Route("/timesheet", func(r chi.Router) {
			r.Get("/", h.Timesheet.Get)
			r.Get("/export", h.Timesheet.Export)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return r
}
