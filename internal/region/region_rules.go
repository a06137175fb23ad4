package region

import (
	"context"
	"errors"

	regionerrors "go-hrm/internal/region/errors"
	"go-hrm/internal/shared/apperror"

	"gorm.io/gorm"
)

// validateCreate rejects a caller-supplied ID that is already taken.
func validateCreate(ctx context.Context, qtx Repository, req CreateRegionRequest) error {
	if req.RegionID == nil {
		return nil
	}
	_, err := qtx.FindByID(ctx, *req.RegionID)
	if err == nil {
		return regionerrors.ErrRegionAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return apperror.ClassifyStorage(err)
}

// validateDelete enforces the cascade guard: a region with dependent
// countries is never deleted.
func validateDelete(ctx context.Context, qtx Repository, id int) error {
	count, err := qtx.CountCountries(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if count > 0 {
		return regionerrors.ErrRegionHasCountries
	}
	return nil
}
