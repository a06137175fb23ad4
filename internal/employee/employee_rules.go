package employee

import (
	"context"
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/shared/apperror"

	"gorm.io/gorm"
)

// validateReferences checks the merged row's foreign references and the
// self-management invariant. employeeID is the row's own key (zero when the
// key is still unassigned).
func validateReferences(ctx context.Context, qtx Repository, employeeID int, e *Employee) error {
	if e.ManagerID != nil {
		if employeeID != 0 && *e.ManagerID == employeeID {
			return employeeerrors.ErrSelfManagement
		}
		if _, err := qtx.FindByID(ctx, *e.ManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrManagerNotFound
			}
			return apperror.ClassifyStorage(err)
		}
	}

	if e.DepartmentID != nil {
		exists, err := qtx.DepartmentExists(ctx, *e.DepartmentID)
		if err != nil {
			return apperror.ClassifyStorage(err)
		}
		if !exists {
			return employeeerrors.ErrDepartmentNotFound
		}
	}

	if e.JobID != nil {
		exists, err := qtx.JobExists(ctx, *e.JobID)
		if err != nil {
			return apperror.ClassifyStorage(err)
		}
		if !exists {
			return employeeerrors.ErrJobNotFound
		}
	}

	return nil
}

// validateEmailUnique rejects an email already held by a different employee.
func validateEmailUnique(ctx context.Context, qtx Repository, email string, selfID int) error {
	existing, err := qtx.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperror.ClassifyStorage(err)
	}
	if existing.EmployeeID != selfID {
		return employeeerrors.ErrEmailAlreadyExists
	}
	return nil
}

func validateDelete(ctx context.Context, qtx Repository, id int) error {
	reports, err := qtx.CountReports(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if reports > 0 {
		return employeeerrors.ErrEmployeeHasReports
	}

	history, err := qtx.CountHistory(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if history > 0 {
		return employeeerrors.ErrEmployeeHasHistory
	}

	managed, err := qtx.CountManagedDepartments(ctx, id)
	if err != nil {
		return apperror.ClassifyStorage(err)
	}
	if managed > 0 {
		return employeeerrors.ErrEmployeeManagesDepartment
	}
	return nil
}
