package locationerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Location not found",
		http.StatusNotFound,
	)
	ErrLocationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Location with the same ID already exists",
		http.StatusConflict,
	)
	ErrLocationHasDepartments = apperror.New(
		apperror.CodeConstraintViolation,
		"Location cannot be deleted while departments reference it",
		http.StatusBadRequest,
	)
	ErrCountryNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced country does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidLocationID = apperror.New(
		apperror.CodeValidationError,
		"Invalid location ID",
		http.StatusBadRequest,
	)
)
