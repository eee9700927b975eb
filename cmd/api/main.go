package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/hrm-backend/api/routes"
	"github.com/angelmondragon/hrm-backend/internal/attendance"
	"github.com/angelmondragon/hrm-backend/internal/auth"
	"github.com/angelmondragon/hrm-backend/internal/employees"
	"github.com/angelmondragon/hrm-backend/internal/registrations"
	"github.com/angelmondragon/hrm-backend/internal/sessions"
	"github.com/angelmondragon/hrm-backend/internal/stores"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/clock"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/metrics"
	"github.com/angelmondragon/hrm-backend/pkg/migrate"
	"github.com/angelmondragon/hrm-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	closers := []func() error{dbClient.Close}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	clk := clock.New(cfg.Clock)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sessionManager, err := session.NewManager(sessions.NewRepository(dbClient.DB()), clk, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	employeeRepo := employees.NewRepository(dbClient.DB())
	registrationRepo := registrations.NewRepository(dbClient.DB())
	storeRepo := stores.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		Employees:      employeeRepo,
		Sessions:       sessionManager,
		Clock:          clk,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	})
	requireService(logg, "auth", err)

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		Employees:      employeeRepo,
		Registrations:  registrationRepo,
		PasswordConfig: cfg.Password,
	})
	requireService(logg, "register", err)

	employeeService, err := employees.NewService(employees.ServiceParams{Repo: employeeRepo})
	requireService(logg, "employees", err)

	storeService, err := stores.NewService(stores.ServiceParams{
		Repo:          storeRepo,
		DefaultRadius: cfg.Geofence.DefaultRadiusMeters,
	})
	requireService(logg, "stores", err)

	attendanceService, err := attendance.NewService(attendance.ServiceParams{
		Records:       attendance.NewRepository(dbClient.DB()),
		Stores:        storeRepo,
		Clock:         clk,
		Metrics:       metrics.NewAttendanceMetrics(registry),
		DefaultRadius: cfg.Geofence.DefaultRadiusMeters,
	})
	requireService(logg, "attendance", err)

	registrationService, err := registrations.NewService(registrations.ServiceParams{
		DB:    dbClient,
		Repo:  registrationRepo,
		Clock: clk,
	})
	requireService(logg, "registrations", err)

	handler := routes.NewRouter(cfg, logg, routes.Dependencies{
		DB:            dbClient,
		Redis:         redisClient,
		Sessions:      sessionManager,
		Auth:          authService,
		Register:      registerService,
		Employees:     employeeService,
		Attendance:    attendanceService,
		Stores:        storeService,
		Registrations: registrationService,
		HTTPMetrics:   metrics.NewHTTPMetrics(registry),
		Gatherer:      registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"db":      dbClient.Dialect(),
		"redis":   redisClient != nil,
		"legacyZ": cfg.Clock.LegacyZ,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeAll(ctx, logg, closers)
			os.Exit(1)
		}
	case <-sigCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	closeAll(ctx, logg, closers)
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(logg.WithField(context.Background(), "service", name), "failed to create service", err)
	os.Exit(1)
}

func closeAll(ctx context.Context, logg *logger.Logger, closers []func() error) {
	var err error
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i]())
	}
	if err != nil {
		logg.Error(ctx, "error closing resources", err)
	}
}
