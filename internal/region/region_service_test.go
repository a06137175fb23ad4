package region_test

import (
	"context"
	"testing"

	"go-hrm/internal/region"
	regionerrors "go-hrm/internal/region/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRegionRepo struct {
	regions      map[int]region.Region
	nextID       int
	countryCount map[int]int64
}

func newFakeRegionRepo() *fakeRegionRepo {
	return &fakeRegionRepo{
		regions:      make(map[int]region.Region),
		nextID:       1,
		countryCount: make(map[int]int64),
	}
}

func (f *fakeRegionRepo) Tx(ctx context.Context, fn func(region.Repository) error) error {
	return fn(f)
}

func (f *fakeRegionRepo) Create(ctx context.Context, r *region.Region) error {
	if r.RegionID == 0 {
		r.RegionID = f.nextID
		f.nextID++
	}
	f.regions[r.RegionID] = *r
	return nil
}

func (f *fakeRegionRepo) FindAll(ctx context.Context) ([]region.Region, error) {
	out := make([]region.Region, 0, len(f.regions))
	for _, r := range f.regions {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRegionRepo) FindByID(ctx context.Context, id int) (*region.Region, error) {
	r, ok := f.regions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (f *fakeRegionRepo) Update(ctx context.Context, r *region.Region) error {
	f.regions[r.RegionID] = *r
	return nil
}

func (f *fakeRegionRepo) Delete(ctx context.Context, id int) error {
	delete(f.regions, id)
	return nil
}

func (f *fakeRegionRepo) CountCountries(ctx context.Context, regionID int) (int64, error) {
	return f.countryCount[regionID], nil
}

func (f *fakeRegionRepo) FindCountries(ctx context.Context, regionID int) ([]region.CountryOption, error) {
	return nil, nil
}

func TestRegionService_CreateThenGet(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := region.NewService(repo)

	created, err := svc.Create(context.Background(), region.CreateRegionRequest{RegionName: "Europe"})
	require.NoError(t, err)
	assert.Equal(t, "Europe", created.RegionName)
	assert.NotZero(t, created.RegionID)

	got, err := svc.GetByID(context.Background(), created.RegionID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRegionService_CreateWithTakenID(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := region.NewService(repo)

	id := 10
	_, err := svc.Create(context.Background(), region.CreateRegionRequest{RegionID: &id, RegionName: "Asia"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), region.CreateRegionRequest{RegionID: &id, RegionName: "Asia Again"})
	assert.ErrorIs(t, err, regionerrors.ErrRegionAlreadyExists)
}

func TestRegionService_DeleteGuardedByCountries(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := region.NewService(repo)

	created, err := svc.Create(context.Background(), region.CreateRegionRequest{RegionName: "Americas"})
	require.NoError(t, err)

	// A dependent country blocks the delete.
	repo.countryCount[created.RegionID] = 1
	err = svc.Delete(context.Background(), created.RegionID)
	assert.ErrorIs(t, err, regionerrors.ErrRegionHasCountries)

	// The region must still exist after the rejected delete.
	_, err = svc.GetByID(context.Background(), created.RegionID)
	require.NoError(t, err)

	// With the dependency gone the delete goes through.
	repo.countryCount[created.RegionID] = 0
	require.NoError(t, svc.Delete(context.Background(), created.RegionID))

	_, err = svc.GetByID(context.Background(), created.RegionID)
	assert.ErrorIs(t, err, regionerrors.ErrRegionNotFound)
}

func TestRegionService_DeleteMissing(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := region.NewService(repo)

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, regionerrors.ErrRegionNotFound)
}

func TestRegionService_PartialUpdate(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := region.NewService(repo)

	created, err := svc.Create(context.Background(), region.CreateRegionRequest{RegionName: "Euorpe"})
	require.NoError(t, err)

	name := "Europe"
	updated, err := svc.Update(context.Background(), created.RegionID, region.UpdateRegionRequest{RegionName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Europe", updated.RegionName)
	assert.Equal(t, created.RegionID, updated.RegionID)
}
