package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/internal/auth"
	"github.com/angelmondragon/hrm-backend/internal/employees"
	"github.com/angelmondragon/hrm-backend/internal/sessions"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/clock"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/security"
)

var (
	passwordCfg = config.PasswordConfig{ArgonMemoryKB: 64, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32}
	reviewer    = session.Principal{EmployeeID: "E0001", Permissions: session.PermRegistrationApprove}
	testClock   = clock.New(config.ClockConfig{OffsetHours: 7, LegacyZ: true},
		clock.WithNow(func() time.Time { return time.Date(2025, 5, 1, 1, 0, 0, 0, time.UTC) }))
)

type fixture struct {
	client *db.Client
	svc    Service
	repo   *Repository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client := dbtest.Open(t)
	dbtest.SeedStore(t, client, "ST01", 21.0285, 105.8542, nil)
	dbtest.SeedStore(t, client, "ST02", 10.7769, 106.7009, nil)

	repo := NewRepository(client.DB())
	svc, err := NewService(ServiceParams{DB: client, Repo: repo, Clock: testClock})
	require.NoError(t, err)
	return fixture{client: client, svc: svc, repo: repo}
}

func (f fixture) seedPending(t *testing.T, id, email, storeID, password string) {
	t.Helper()
	hash, err := security.HashPassword(password, passwordCfg)
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), &models.PendingRegistration{
		EmployeeID:       id,
		Email:            email,
		PasswordHash:     hash,
		FullName:         "Pending " + id,
		Phone:            "0900000000",
		StoreID:          storeID,
		CompanyID:        "CH",
		PositionID:       "CH_NV",
		VerificationCode: "ABCDEF12",
		Status:           enums.RegistrationStatusPending,
	}))
}

func TestApproveThenLoginRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, "E5001", "new@example.com", "ST01", "secret1")
	ctx := context.Background()

	require.NoError(t, f.svc.Approve(ctx, reviewer, "E5001"))

	reg, err := f.repo.FindByID(ctx, "E5001")
	require.NoError(t, err)
	assert.Equal(t, enums.RegistrationStatusApproved, reg.Status)
	require.NotNil(t, reg.ReviewedBy)
	assert.Equal(t, "E0001", *reg.ReviewedBy)
	require.NotNil(t, reg.ReviewedAt)
	assert.Equal(t, "2025-05-01T08:00:00.000000Z", *reg.ReviewedAt)

	manager, err := session.NewManager(sessions.NewRepository(f.client.DB()), testClock,
		config.SessionConfig{TTL: 24 * time.Hour, RememberTTL: 720 * time.Hour})
	require.NoError(t, err)
	authSvc, err := auth.NewService(auth.ServiceParams{
		Employees:      employees.NewRepository(f.client.DB()),
		Sessions:       manager,
		Clock:          testClock,
		PasswordConfig: passwordCfg,
	})
	require.NoError(t, err)

	resp, err := authSvc.Login(ctx, auth.LoginRequest{EmployeeID: "E5001", Password: "secret1"})
	require.NoError(t, err)

	me, err := manager.Validate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "E5001", me.EmployeeID)
	assert.Equal(t, "new@example.com", me.Email)
	require.NotNil(t, me.StoreID)
	assert.Equal(t, "ST01", *me.StoreID)
	assert.Equal(t, "approved", me.ApprovalStatus)
}

func TestApproveRejectsNonPending(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, "E5001", "a@example.com", "ST01", "secret1")
	ctx := context.Background()

	err := f.svc.Approve(ctx, reviewer, "E9999")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	require.NoError(t, f.svc.Reject(ctx, reviewer, "E5001", " duplicate "))
	reg, err := f.repo.FindByID(ctx, "E5001")
	require.NoError(t, err)
	assert.Equal(t, enums.RegistrationStatusRejected, reg.Status)
	require.NotNil(t, reg.ReviewReason)
	assert.Equal(t, "duplicate", *reg.ReviewReason)

	err = f.svc.Approve(ctx, reviewer, "E5001")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	err = f.svc.Reject(ctx, reviewer, "E5001", "")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	exists, err := employees.NewRepository(f.client.DB()).IDExists(ctx, "E5001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApproveRollsBackWhenEmailTaken(t *testing.T) {
	f := newFixture(t)
	dbtest.SeedEmployee(t, f.client, dbtest.EmployeeSeed{ID: "E1001", Email: "dup@example.com"})
	f.seedPending(t, "E5001", "dup@example.com", "ST01", "secret1")
	ctx := context.Background()

	err := f.svc.Approve(ctx, reviewer, "E5001")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	reg, err := f.repo.FindByID(ctx, "E5001")
	require.NoError(t, err)
	assert.Equal(t, enums.RegistrationStatusPending, reg.Status)
}

func TestListFiltersAndRequiresPermission(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, "E5001", "a@example.com", "ST01", "secret1")
	f.seedPending(t, "E5002", "b@example.com", "ST02", "secret1")
	ctx := context.Background()
	require.NoError(t, f.svc.Reject(ctx, reviewer, "E5002", ""))

	all, err := f.svc.List(ctx, reviewer, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.svc.List(ctx, reviewer, ListFilter{Status: enums.RegistrationStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "E5001", pending[0].EmployeeID)

	byStore, err := f.svc.List(ctx, reviewer, ListFilter{StoreID: "ST02"})
	require.NoError(t, err)
	require.Len(t, byStore, 1)
	assert.Equal(t, "E5002", byStore[0].EmployeeID)

	_, err = f.svc.List(ctx, reviewer, ListFilter{Status: "bogus"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	outsider := session.Principal{EmployeeID: "E2000", Permissions: "attendance_check"}
	_, err = f.svc.List(ctx, outsider, ListFilter{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
	err = f.svc.Approve(ctx, outsider, "E5001")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))

	admin := session.Principal{EmployeeID: "E0002", Permissions: "system_admin"}
	_, err = f.svc.List(ctx, admin, ListFilter{})
	assert.NoError(t, err)
}
