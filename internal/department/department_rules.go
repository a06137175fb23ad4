package department

import (
	"context"

	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/shared/apperror"
)

// validateRefs checks the nullable manager and location references of the
// merged row.
func validateRefs(ctx context.Context, qtx Repository, managerID, locationID *int) error {
	if managerID != nil {
		exists, err := qtx.EmployeeExists(ctx, *managerID)
		if err != nil {
			return apperror.ClassifyStorage(err)
		}
		if !exists {
			return departmenterrors.ErrManagerNotFound
		}
	}

	if locationID != nil {
		exists, err := qtx.LocationExists(ctx, *locationID)
		if err != nil {
			return apperror.ClassifyStorage(err)
		}
		if !exists {
			return departmenterrors.ErrLocationNotFound
		}
	}

	return nil
}

func validateDelete(ctx context.Context, qtx Repository, id int) error {
	employees, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if employees > 0 {
		return departmenterrors.ErrDepartmentHasEmployees
	}

	history, err := qtx.CountHistory(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if history > 0 {
		return departmenterrors.ErrDepartmentHasHistory
	}
	return nil
}
