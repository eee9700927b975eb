// Package dbtest opens migrated in-memory SQLite databases for package tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	"github.com/angelmondragon/hrm-backend/pkg/migrate"
)

// Open returns a client on a fresh in-memory database with every migration applied.
func Open(t *testing.T) *db.Client {
	t.Helper()
	ctx := context.Background()

	client, err := db.New(ctx, config.DBConfig{Driver: config.DriverSQLite, DSN: "file::memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(ctx, sqlDB, client.Dialect()))
	return client
}

// SeedStore inserts a store; radius may be nil.
func SeedStore(t *testing.T, client *db.Client, id string, lat, lon float64, radius *float64) models.Store {
	t.Helper()
	store := models.Store{StoreID: id, StoreName: "Store " + id, Latitude: lat, Longitude: lon, Radius: radius}
	require.NoError(t, client.DB().Create(&store).Error)
	return store
}

// EmployeeSeed describes an employee row for tests.
type EmployeeSeed struct {
	ID           string
	Email        string
	PasswordHash string
	StoreID      string
	CompanyID    string
	PositionID   string
	Status       enums.ApprovalStatus
	Inactive     bool
}

// SeedEmployee inserts an employee with sensible defaults.
func SeedEmployee(t *testing.T, client *db.Client, seed EmployeeSeed) models.Employee {
	t.Helper()
	if seed.Email == "" {
		seed.Email = seed.ID + "@example.com"
	}
	if seed.PasswordHash == "" {
		seed.PasswordHash = "unused"
	}
	if seed.Status == "" {
		seed.Status = enums.ApprovalStatusApproved
	}
	emp := models.Employee{
		EmployeeID:     seed.ID,
		FullName:       "Employee " + seed.ID,
		Email:          seed.Email,
		PasswordHash:   seed.PasswordHash,
		StoreID:        optional(seed.StoreID),
		CompanyID:      optional(seed.CompanyID),
		PositionID:     optional(seed.PositionID),
		IsActive:       true,
		ApprovalStatus: seed.Status,
	}
	require.NoError(t, client.DB().Create(&emp).Error)
	if seed.Inactive {
		require.NoError(t, client.DB().Model(&models.Employee{}).
			Where("employee_id = ?", seed.ID).
			UpdateColumn("is_active", false).Error)
		emp.IsActive = false
	}
	return emp
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
