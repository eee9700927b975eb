package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
)

func ptr(v float64) *float64 { return &v }

func TestEffectiveRadius(t *testing.T) {
	assert.Equal(t, 50.0, EffectiveRadius(models.Store{}, 50))
	assert.Equal(t, 50.0, EffectiveRadius(models.Store{Radius: ptr(0)}, 50))
	assert.Equal(t, 120.0, EffectiveRadius(models.Store{Radius: ptr(120)}, 50))
}

func TestServiceListAndGet(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedStore(t, client, "ST02", 10.7769, 106.7009, ptr(200))
	dbtest.SeedStore(t, client, "ST01", 21.0285, 105.8542, nil)

	svc, err := NewService(ServiceParams{Repo: NewRepository(client.DB()), DefaultRadius: 50})
	require.NoError(t, err)

	ctx := context.Background()
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ST01", list[0].StoreID)
	assert.Nil(t, list[0].Radius)
	assert.Equal(t, 50.0, list[0].EffectiveRadius)
	assert.Equal(t, 200.0, list[1].EffectiveRadius)

	got, err := svc.Get(ctx, "ST02")
	require.NoError(t, err)
	assert.Equal(t, 10.7769, got.Latitude)

	_, err = svc.Get(ctx, "NOPE")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestRepositoryFindForEmployee(t *testing.T) {
	client := dbtest.Open(t)
	dbtest.SeedStore(t, client, "ST01", 21.0285, 105.8542, ptr(75))
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1001", StoreID: "ST01"})
	dbtest.SeedEmployee(t, client, dbtest.EmployeeSeed{ID: "E1002"})

	repo := NewRepository(client.DB())
	ctx := context.Background()

	store, err := repo.FindForEmployee(ctx, "E1001")
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "ST01", store.StoreID)
	require.NotNil(t, store.Radius)
	assert.Equal(t, 75.0, *store.Radius)

	store, err = repo.FindForEmployee(ctx, "E1002")
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = repo.FindForEmployee(ctx, "E9999")
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService(ServiceParams{DefaultRadius: 50})
	assert.Error(t, err)
}
