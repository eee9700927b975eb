package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/hrm-backend/api/controllers"
	"github.com/angelmondragon/hrm-backend/api/middleware"
	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/internal/attendance"
	"github.com/angelmondragon/hrm-backend/internal/auth"
	"github.com/angelmondragon/hrm-backend/internal/employees"
	"github.com/angelmondragon/hrm-backend/internal/registrations"
	"github.com/angelmondragon/hrm-backend/internal/stores"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/metrics"
	"github.com/angelmondragon/hrm-backend/pkg/redis"
)

// Dependencies carries everything the router hands to controllers. Redis and
// the metrics fields are optional.
type Dependencies struct {
	DB       controllers.Pinger
	Redis    *redis.Client
	Sessions session.Validator

	Auth          auth.Service
	Register      auth.RegisterService
	Employees     employees.Service
	Attendance    attendance.Service
	Stores        stores.Service
	Registrations registrations.Service

	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if cfg.App.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.App.RequestTimeout))
	}

	// A nil *redis.Client must not reach the limiter as a non-nil interface.
	var limiter redis.RateLimiter
	readyDeps := map[string]controllers.Pinger{"database": deps.DB}
	if deps.Redis != nil {
		limiter = deps.Redis
		readyDeps["redis"] = deps.Redis
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginIdentityLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterIdentityLimit,
	)

	r.Get("/health", controllers.Health(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, readyDeps, logg))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, limiter, logg)).Post("/register", controllers.AuthRegister(deps.Register, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Sessions, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Auth, logg))
			r.Get("/me", controllers.AuthMe(logg))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.Sessions, logg))

		r.Get("/employees", controllers.EmployeesList(deps.Employees, logg))
		r.Post("/gps/check", controllers.GPSCheck(deps.Attendance, logg))
		r.Get("/attendance", controllers.AttendanceHistory(deps.Attendance, logg))
		r.Get("/stores", controllers.StoresList(deps.Stores, logg))

		r.Route("/registrations", func(r chi.Router) {
			r.Use(middleware.RequirePermission(session.PermRegistrationApprove, logg))
			r.Get("/", controllers.RegistrationsList(deps.Registrations, logg))
			r.Post("/{employeeId}/approve", controllers.RegistrationApprove(deps.Registrations, logg))
			r.Post("/{employeeId}/reject", controllers.RegistrationReject(deps.Registrations, logg))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Endpoint not found"))
	})

	return r
}
