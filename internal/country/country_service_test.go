package country_test

import (
	"context"
	"testing"

	"go-hrm/internal/country"
	countryerrors "go-hrm/internal/country/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCountryRepo struct {
	countries     map[string]country.Country
	regions       map[int]bool
	locationCount map[string]int64
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{
		countries:     make(map[string]country.Country),
		regions:       make(map[int]bool),
		locationCount: make(map[string]int64),
	}
}

func (f *fakeCountryRepo) Tx(ctx context.Context, fn func(country.Repository) error) error {
	return fn(f)
}

func (f *fakeCountryRepo) Create(ctx context.Context, c *country.Country) error {
	f.countries[c.CountryID] = *c
	return nil
}

func (f *fakeCountryRepo) FindAll(ctx context.Context) ([]country.CountryDetail, error) {
	out := make([]country.CountryDetail, 0, len(f.countries))
	for _, c := range f.countries {
		out = append(out, country.CountryDetail{Country: c})
	}
	return out, nil
}

func (f *fakeCountryRepo) FindByID(ctx context.Context, id string) (*country.CountryDetail, error) {
	c, ok := f.countries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &country.CountryDetail{Country: c}, nil
}

func (f *fakeCountryRepo) Update(ctx context.Context, c *country.Country) error {
	f.countries[c.CountryID] = *c
	return nil
}

func (f *fakeCountryRepo) Delete(ctx context.Context, id string) error {
	delete(f.countries, id)
	return nil
}

func (f *fakeCountryRepo) RegionExists(ctx context.Context, regionID int) (bool, error) {
	return f.regions[regionID], nil
}

func (f *fakeCountryRepo) CountLocations(ctx context.Context, countryID string) (int64, error) {
	return f.locationCount[countryID], nil
}

func TestCountryService_CreateThenGet(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.regions[1] = true
	svc := country.NewService(repo)

	created, err := svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "us",
		CountryName: "United States of America",
		RegionID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "US", created.CountryID)

	got, err := svc.GetByID(context.Background(), "us")
	require.NoError(t, err)
	assert.Equal(t, "United States of America", got.CountryName)
	assert.Equal(t, 1, got.RegionID)
}

func TestCountryService_CreateUnknownRegion(t *testing.T) {
	svc := country.NewService(newFakeCountryRepo())

	_, err := svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "DE",
		CountryName: "Germany",
		RegionID:    9,
	})
	assert.ErrorIs(t, err, countryerrors.ErrRegionNotFound)
}

func TestCountryService_CreateDuplicate(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.regions[1] = true
	svc := country.NewService(repo)

	_, err := svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "UK",
		CountryName: "United Kingdom",
		RegionID:    1,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "uk",
		CountryName: "United Kingdom again",
		RegionID:    1,
	})
	assert.ErrorIs(t, err, countryerrors.ErrCountryAlreadyExists)
}

func TestCountryService_DeleteGuardedByLocations(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.regions[1] = true
	svc := country.NewService(repo)

	_, err := svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "JP",
		CountryName: "Japan",
		RegionID:    1,
	})
	require.NoError(t, err)

	repo.locationCount["JP"] = 2
	err = svc.Delete(context.Background(), "JP")
	assert.ErrorIs(t, err, countryerrors.ErrCountryHasLocations)

	// The country survives a rejected delete.
	_, err = svc.GetByID(context.Background(), "JP")
	require.NoError(t, err)

	repo.locationCount["JP"] = 0
	require.NoError(t, svc.Delete(context.Background(), "JP"))

	_, err = svc.GetByID(context.Background(), "JP")
	assert.ErrorIs(t, err, countryerrors.ErrCountryNotFound)
}

func TestCountryService_UpdateRejectsUnknownRegion(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.regions[1] = true
	svc := country.NewService(repo)

	_, err := svc.Create(context.Background(), country.CreateCountryRequest{
		CountryID:   "BR",
		CountryName: "Brazil",
		RegionID:    1,
	})
	require.NoError(t, err)

	badRegion := 42
	_, err = svc.Update(context.Background(), "BR", country.UpdateCountryRequest{
		RegionID: &badRegion,
	})
	assert.ErrorIs(t, err, countryerrors.ErrRegionNotFound)

	newName := "Federative Republic of Brazil"
	updated, err := svc.Update(context.Background(), "BR", country.UpdateCountryRequest{
		CountryName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.CountryName)
	assert.Equal(t, 1, updated.RegionID)
}
