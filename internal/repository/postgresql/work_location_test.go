package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZone(name string, active bool) worklocation.WorkLocation {
	return worklocation.WorkLocation{
		ID:           uuid.NewString(),
		Name:         name,
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
		IsActive:     active,
	}
}

func TestWorkLocationCreateAndGet(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewWorkLocationRepository(db)

	created, err := repo.Create(ctx, newZone("Head Office", true))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Head Office", got.Name)
	assert.Equal(t, 100, got.RadiusMeters)
	assert.True(t, got.IsActive)

	_, err = repo.GetByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)
}

func TestWorkLocationListActiveFiltersInactive(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewWorkLocationRepository(db)

	_, err := repo.Create(ctx, newZone("Head Office", true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newZone("Old Branch", false))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Head Office", active[0].Name)
}

func TestWorkLocationPartialUpdate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewWorkLocationRepository(db)

	created, err := repo.Create(ctx, newZone("Head Office", true))
	require.NoError(t, err)

	radius := 150
	inactive := false
	err = repo.Update(ctx, worklocation.UpdateWorkLocationRequest{
		ID:           created.ID,
		RadiusMeters: &radius,
		IsActive:     &inactive,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Head Office", got.Name, "untouched columns keep their values")
	assert.Equal(t, 150, got.RadiusMeters)
	assert.False(t, got.IsActive)

	err = repo.Update(ctx, worklocation.UpdateWorkLocationRequest{
		ID:           uuid.NewString(),
		RadiusMeters: &radius,
	})
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)
}

func TestWorkLocationDelete(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewWorkLocationRepository(db)

	created, err := repo.Create(ctx, newZone("Head Office", true))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)

	err = repo.Delete(ctx, created.ID)
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)
}
