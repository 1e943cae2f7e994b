package worklocation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkLocationRepo struct {
	locations map[string]worklocation.WorkLocation
}

func newFakeRepo() *fakeWorkLocationRepo {
	return &fakeWorkLocationRepo{locations: make(map[string]worklocation.WorkLocation)}
}

func (f *fakeWorkLocationRepo) Create(_ context.Context, loc worklocation.WorkLocation) (worklocation.WorkLocation, error) {
	f.locations[loc.ID] = loc
	return loc, nil
}

func (f *fakeWorkLocationRepo) GetByID(_ context.Context, id string) (worklocation.WorkLocation, error) {
	loc, ok := f.locations[id]
	if !ok {
		return worklocation.WorkLocation{}, worklocation.ErrWorkLocationNotFound
	}
	return loc, nil
}

func (f *fakeWorkLocationRepo) List(_ context.Context) ([]worklocation.WorkLocation, error) {
	out := make([]worklocation.WorkLocation, 0, len(f.locations))
	for _, loc := range f.locations {
		out = append(out, loc)
	}
	return out, nil
}

func (f *fakeWorkLocationRepo) ListActive(_ context.Context) ([]worklocation.WorkLocation, error) {
	var active []worklocation.WorkLocation
	for _, loc := range f.locations {
		if loc.IsActive {
			active = append(active, loc)
		}
	}
	return active, nil
}

func (f *fakeWorkLocationRepo) Update(_ context.Context, req worklocation.UpdateWorkLocationRequest) error {
	loc, ok := f.locations[req.ID]
	if !ok {
		return worklocation.ErrWorkLocationNotFound
	}
	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = req.Address
	}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		loc.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}
	f.locations[req.ID] = loc
	return nil
}

func (f *fakeWorkLocationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.locations[id]; !ok {
		return worklocation.ErrWorkLocationNotFound
	}
	delete(f.locations, id)
	return nil
}

func newTestService() (worklocation.WorkLocationService, *fakeWorkLocationRepo) {
	repo := newFakeRepo()
	return NewWorkLocationService(nil, repo, 50), repo
}

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateWorkLocation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:         "Head Office",
		Address:      strPtr("Jl. Sudirman 1"),
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "new locations start active")
	assert.Len(t, repo.locations, 1)
}

func TestCreateWorkLocation_DefaultRadius(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:      "Branch",
		Latitude:  -6.9,
		Longitude: 107.6,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, created.RadiusMeters)
}

func TestCreateWorkLocation_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:      "",
		Latitude:  95,
		Longitude: 200,
	})

	require.Error(t, err)
	assert.Empty(t, repo.locations)
}

func TestUpdateWorkLocation_Partial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:         "Head Office",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, worklocation.UpdateWorkLocationRequest{
		ID:           created.ID,
		RadiusMeters: intPtr(150),
		IsActive:     boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Head Office", updated.Name, "untouched fields keep their values")
	assert.Equal(t, 150, updated.RadiusMeters)
	assert.False(t, updated.IsActive)
}

func TestGetAndDeleteWorkLocation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Get(ctx, uuid.NewString())
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)

	_, err = svc.Get(ctx, "not-a-uuid")
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:         "Branch",
		Latitude:     -6.9,
		Longitude:    107.6,
		RadiusMeters: 80,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Branch", got.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, worklocation.ErrWorkLocationNotFound)
}

func TestValidateLocation_Inaccurate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	check, err := svc.ValidateLocation(ctx, worklocation.ValidateLocationRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
		Accuracy:  floatPtr(75),
	})

	require.NoError(t, err)
	assert.False(t, check.IsAccurate)
	assert.False(t, check.IsWithinGeofence)
	assert.Nil(t, check.DistanceMeters, "inconclusive checks carry no distance")
}

func TestValidateLocation_WithinZone(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:         "Head Office",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})
	require.NoError(t, err)

	check, err := svc.ValidateLocation(ctx, worklocation.ValidateLocationRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
		Accuracy:  floatPtr(15),
	})

	require.NoError(t, err)
	assert.True(t, check.IsAccurate)
	assert.True(t, check.IsWithinGeofence)
	require.NotNil(t, check.WorkLocation)
	assert.Equal(t, created.ID, check.WorkLocation.ID)
	require.NotNil(t, check.DistanceMeters)
	assert.Equal(t, 0, *check.DistanceMeters)
	assert.Nil(t, check.ClosestLocation)
}

func TestValidateLocation_OutsideReportsClosest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, worklocation.CreateWorkLocationRequest{
		Name:         "Head Office",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})
	require.NoError(t, err)

	// ~120 m north of the zone center.
	check, err := svc.ValidateLocation(ctx, worklocation.ValidateLocationRequest{
		Latitude:  -6.20108,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	assert.True(t, check.IsAccurate, "missing accuracy is treated as acceptable")
	assert.False(t, check.IsWithinGeofence)
	assert.Nil(t, check.WorkLocation)
	require.NotNil(t, check.ClosestLocation)
	assert.Equal(t, created.ID, check.ClosestLocation.ID)
	require.NotNil(t, check.DistanceMeters)
	assert.InDelta(t, 120, *check.DistanceMeters, 3)
}

func TestValidateLocation_NoZones(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	check, err := svc.ValidateLocation(ctx, worklocation.ValidateLocationRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	assert.False(t, check.IsWithinGeofence)
	assert.Nil(t, check.ClosestLocation)
	assert.Nil(t, check.DistanceMeters)
}
