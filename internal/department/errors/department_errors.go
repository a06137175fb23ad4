package departmenterrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same ID already exists",
		http.StatusConflict,
	)
	ErrDepartmentHasEmployees = apperror.New(
		apperror.CodeConstraintViolation,
		"Department cannot be deleted while employees reference it",
		http.StatusBadRequest,
	)
	ErrDepartmentHasHistory = apperror.New(
		apperror.CodeConstraintViolation,
		"Department cannot be deleted while job history references it",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced manager does not exist",
		http.StatusBadRequest,
	)
	ErrLocationNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced location does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidationError,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
