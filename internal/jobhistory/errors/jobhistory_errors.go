package jobhistoryerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job history record not found",
		http.StatusNotFound,
	)
	ErrHistoryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Job history record for this employee and start date already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced job does not exist",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced department does not exist",
		http.StatusBadRequest,
	)
	ErrHistoryClosed = apperror.New(
		apperror.CodeConstraintViolation,
		"Closed job history records only accept job or department corrections",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeValidationError,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidationError,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidationError,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
