package employeeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same ID already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrSelfManagement = apperror.New(
		apperror.CodeConstraintViolation,
		"Employee cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced manager does not exist",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced department does not exist",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced job does not exist",
		http.StatusBadRequest,
	)
	ErrEmployeeHasReports = apperror.New(
		apperror.CodeConstraintViolation,
		"Employee cannot be deleted while other employees report to them",
		http.StatusBadRequest,
	)
	ErrEmployeeHasHistory = apperror.New(
		apperror.CodeConstraintViolation,
		"Employee cannot be deleted while job history references them",
		http.StatusBadRequest,
	)
	ErrEmployeeManagesDepartment = apperror.New(
		apperror.CodeConstraintViolation,
		"Employee cannot be deleted while managing a department",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidationError,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidationError,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
