package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/hrm-backend/internal/employees"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/migrate"
	"github.com/angelmondragon/hrm-backend/pkg/security"
)

const (
	adminPositionID    = "VP_ADMIN"
	tempPasswordLength = 16
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	// Flags
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate|seed-admin")
	dir := flag.String("dir", "", "goose migrations directory (empty uses the embedded set)")

	// Command-specific flags
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	adminID := flag.String("id", "E0001", "employee id for -cmd=seed-admin")
	adminEmail := flag.String("email", "admin@example.com", "email for -cmd=seed-admin")
	adminName := flag.String("full-name", "System Administrator", "full name for -cmd=seed-admin")
	adminPassword := flag.String("password", "", "password for -cmd=seed-admin (generated when empty)")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	// Commands that do NOT require DB
	diskDir := *dir
	if diskDir == "" {
		diskDir = migrate.DefaultDir
	}
	switch *cmd {
	case "create":
		if *name == "" {
			fmt.Fprintln(os.Stderr, "missing -name for create")
			os.Exit(1)
		}
		path, err := migrate.CreateSQLMigration(diskDir, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		if err := migrate.ValidateDir(diskDir); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	// Everything else needs DB
	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	sqlDB, err := dbClient.SQL()
	requireResource(ctx, logg, "sql database", err)
	dialect := dbClient.Dialect()

	logg.Info(ctx, "migrate ready")

	switch *cmd {
	case "up", "down", "status":
		if err := migrate.Run(ctx, sqlDB, dialect, *dir, *cmd); err != nil {
			fmt.Fprintf(os.Stderr, "goose %s failed: %v\n", *cmd, err)
			os.Exit(1)
		}

	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		if err := migrate.MigrateToVersion(ctx, sqlDB, dialect, *dir, *version); err != nil {
			fmt.Fprintf(os.Stderr, "goose version migrate failed: %v\n", err)
			os.Exit(1)
		}

	case "seed-admin":
		password := *adminPassword
		generated := password == ""
		if generated {
			password, err = security.GenerateTempPassword(tempPasswordLength)
			requireResource(ctx, logg, "temp password", err)
		}
		hash, err := security.HashPassword(password, cfg.Password)
		requireResource(ctx, logg, "password hash", err)

		position := adminPositionID
		_, err = employees.NewRepository(dbClient.DB()).Create(ctx, employees.NewEmployee{
			EmployeeID:     strings.ToUpper(strings.TrimSpace(*adminID)),
			FullName:       *adminName,
			Email:          strings.ToLower(strings.TrimSpace(*adminEmail)),
			PasswordHash:   hash,
			PositionID:     &position,
			ApprovalStatus: enums.ApprovalStatusApproved,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed admin failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("seeded admin:", strings.ToUpper(strings.TrimSpace(*adminID)))
		if generated {
			fmt.Println("temporary password:", password)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
