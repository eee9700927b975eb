package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/clock"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

func TestRepositoryFindActiveJoinsEmployeeAndPosition(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedStore(t, client, "ST01", 21.0285, 105.8542, nil)
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1234", StoreID: "ST01", CompanyID: "CH", PositionID: "CH_QL"})

	repo := NewRepository(client.DB())
	ctx := context.Background()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, session.Record{
		ID:           uuid.New(),
		EmployeeID:   "E1234",
		Token:        "tok-1",
		ExpiresAt:    expires,
		LastActivity: "2024-03-01T10:00:00.000000Z",
	}))

	active, err := repo.FindActive(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.True(t, active.ExpiresAt.Equal(expires))
	assert.Equal(t, "E1234", active.Principal.EmployeeID)
	require.NotNil(t, active.Principal.PositionName)
	assert.Equal(t, "Quản lý cửa hàng", *active.Principal.PositionName)
	assert.True(t, active.Principal.Can(session.PermRegistrationApprove))
	assert.Equal(t, "approved", active.Principal.ApprovalStatus)

	missing, err := repo.FindActive(ctx, "tok-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepositoryDeactivateHidesSession(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1234"})

	repo := NewRepository(client.DB())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, session.Record{ID: uuid.New(), EmployeeID: "E1234", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, repo.Deactivate(ctx, "tok"))
	require.NoError(t, repo.Deactivate(ctx, "tok"))

	active, err := repo.FindActive(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestRepositorySkipsDeactivatedEmployees(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E2000", Inactive: true})

	repo := NewRepository(client.DB())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, session.Record{ID: uuid.New(), EmployeeID: "E2000", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))

	active, err := repo.FindActive(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestRepositoryTouchAndDeleteExpired(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1234"})

	repo := NewRepository(client.DB())
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, session.Record{ID: uuid.New(), EmployeeID: "E1234", Token: "old", ExpiresAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, session.Record{ID: uuid.New(), EmployeeID: "E1234", Token: "live", ExpiresAt: now.Add(48 * time.Hour)}))

	require.NoError(t, repo.Touch(ctx, "live", "2024-03-01T10:00:00.000000Z"))
	var live models.Session
	require.NoError(t, client.DB().Where("session_token = ?", "live").Take(&live).Error)
	require.NotNil(t, live.LastActivity)
	assert.Equal(t, "2024-03-01T10:00:00.000000Z", *live.LastActivity)

	deleted, err := repo.DeleteExpired(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var remaining int64
	require.NoError(t, client.DB().Model(&models.Session{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestManagerWithRepositoryRoundTrip(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1234"})

	clk := clock.New(config.ClockConfig{OffsetHours: 7, LegacyZ: true})
	manager, err := session.NewManager(NewRepository(client.DB()), clk, config.SessionConfig{
		TTL: 24 * time.Hour, RememberTTL: 720 * time.Hour, TouchOnUse: true,
	})
	require.NoError(t, err)

	ctx := context.Background()
	token, expiresIn, err := manager.Create(ctx, "E1234", true)
	require.NoError(t, err)
	assert.EqualValues(t, 2592000, expiresIn)

	principal, err := manager.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "E1234", principal.EmployeeID)

	require.NoError(t, manager.Invalidate(ctx, token))
	_, err = manager.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}
