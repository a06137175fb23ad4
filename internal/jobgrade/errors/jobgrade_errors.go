package jobgradeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrJobGradeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job grade not found",
		http.StatusNotFound,
	)
	ErrJobGradeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Job grade with the same level already exists",
		http.StatusConflict,
	)
	ErrInvalidSalaryBand = apperror.New(
		apperror.CodeValidationError,
		"lowest_sal must not exceed highest_sal",
		http.StatusBadRequest,
	)
	ErrInvalidGradeLevel = apperror.New(
		apperror.CodeValidationError,
		"Invalid grade level",
		http.StatusBadRequest,
	)
)
