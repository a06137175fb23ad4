package employee

import (
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/shared/apperror"

	"gorm.io/gorm"
)

// mapStorageError re-classifies a write rejected by the storage engine, so a
// race lost to a concurrent writer surfaces as the same taxonomy error the
// in-process check would have produced.
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	if apperror.IsUniqueViolation(err, "uq_employee_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if apperror.IsUniqueViolation(err, "") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	if apperror.IsForeignKeyViolation(err) {
		return employeeerrors.ErrDepartmentNotFound
	}

	return apperror.ClassifyStorage(err)
}
