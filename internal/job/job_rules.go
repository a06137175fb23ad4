package job

import (
	"context"
	"errors"

	joberrors "go-hrm/internal/job/errors"
	"go-hrm/internal/shared/apperror"

	"gorm.io/gorm"
)

// validateSalaryRange enforces min_salary <= max_salary when both bounds are
// present.
func validateSalaryRange(minSalary, maxSalary *float64) error {
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return joberrors.ErrInvalidSalaryRange
	}
	return nil
}

func validateCreate(ctx context.Context, qtx Repository, req CreateJobRequest) error {
	if err := validateSalaryRange(req.MinSalary, req.MaxSalary); err != nil {
		return err
	}

	_, err := qtx.FindByID(ctx, req.JobID)
	if err == nil {
		return joberrors.ErrJobAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return apperror.ClassifyStorage(err)
}

func validateDelete(ctx context.Context, qtx Repository, id string) error {
	employees, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if employees > 0 {
		return joberrors.ErrJobHasEmployees
	}

	history, err := qtx.CountHistory(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if history > 0 {
		return joberrors.ErrJobHasHistory
	}
	return nil
}
