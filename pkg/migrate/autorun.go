package migrate

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
)

// MaybeRunDev brings the schema up to date on startup, only in dev with HRM_AUTO_MIGRATE set.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}

	ctx = logg.WithField(ctx, "dialect", client.Dialect())
	if err := Up(ctx, sqlDB, client.Dialect()); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("auto migrate: read version: %w", err)
	}
	logg.Info(logg.WithField(ctx, "schema_version", version), "migrate.auto.done")
	return nil
}
