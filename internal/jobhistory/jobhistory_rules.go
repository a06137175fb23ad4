package jobhistory

import (
	"context"

	jobhistoryerrors "go-hrm/internal/jobhistory/errors"
	"go-hrm/internal/shared/apperror"
)

// validateReferences checks the record's foreign references against current
// storage state.
func validateReferences(ctx context.Context, qtx Repository, jh *JobHistory) error {
	exists, err := qtx.EmployeeExists(ctx, jh.EmployeeID)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if !exists {
		return jobhistoryerrors.ErrEmployeeNotFound
	}

	exists, err = qtx.JobExists(ctx, jh.JobID)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if !exists {
		return jobhistoryerrors.ErrJobNotFound
	}

	if jh.DepartmentID != nil {
		exists, err = qtx.DepartmentExists(ctx, *jh.DepartmentID)
		if err != nil {
			return apperror.ClassifyStorage(err)
		}
		if !exists {
			return jobhistoryerrors.ErrDepartmentNotFound
		}
	}

	return nil
}

func validateDateRange(jh *JobHistory) error {
	if jh.EndDate != nil && jh.EndDate.Before(jh.StartDate) {
		return jobhistoryerrors.ErrEndBeforeStart
	}
	return nil
}
