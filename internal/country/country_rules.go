package country

import (
	"context"
	"errors"

	countryerrors "go-hrm/internal/country/errors"
	"go-hrm/internal/shared/apperror"

	"gorm.io/gorm"
)

// validateCreate checks key uniqueness and that the referenced region exists.
func validateCreate(ctx context.Context, qtx Repository, req CreateCountryRequest) error {
	_, err := qtx.FindByID(ctx, req.CountryID)
	if err == nil {
		return countryerrors.ErrCountryAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ClassifyStorage(err)
	}

	return validateRegionRef(ctx, qtx, req.RegionID)
}

func validateRegionRef(ctx context.Context, qtx Repository, regionID int) error {
	exists, err := qtx.RegionExists(ctx, regionID)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if !exists {
		return countryerrors.ErrRegionNotFound
	}
	return nil
}

func validateDelete(ctx context.Context, qtx Repository, id string) error {
	count, err := qtx.CountLocations(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if count > 0 {
		return countryerrors.ErrCountryHasLocations
	}
	return nil
}
