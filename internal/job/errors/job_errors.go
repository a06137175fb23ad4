package joberrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrJobAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Job with the same ID already exists",
		http.StatusConflict,
	)
	ErrJobHasEmployees = apperror.New(
		apperror.CodeConstraintViolation,
		"Job cannot be deleted while employees reference it",
		http.StatusBadRequest,
	)
	ErrJobHasHistory = apperror.New(
		apperror.CodeConstraintViolation,
		"Job cannot be deleted while job history references it",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeValidationError,
		"min_salary must not exceed max_salary",
		http.StatusBadRequest,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeValidationError,
		"Invalid job ID",
		http.StatusBadRequest,
	)
)
