package location

import (
	"context"

	locationerrors "go-hrm/internal/location/errors"
	"go-hrm/internal/shared/apperror"
)

func validateCountryRef(ctx context.Context, qtx Repository, countryID string) error {
	exists, err := qtx.CountryExists(ctx, countryID)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if !exists {
		return locationerrors.ErrCountryNotFound
	}
	return nil
}

func validateDelete(ctx context.Context, qtx Repository, id int) error {
	count, err := qtx.CountDepartments(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if count > 0 {
		return locationerrors.ErrLocationHasDepartments
	}
	return nil
}
