package countryerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrCountryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Country not found",
		http.StatusNotFound,
	)
	ErrCountryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Country with the same ID already exists",
		http.StatusConflict,
	)
	ErrCountryHasLocations = apperror.New(
		apperror.CodeConstraintViolation,
		"Country cannot be deleted while locations reference it",
		http.StatusBadRequest,
	)
	ErrRegionNotFound = apperror.New(
		apperror.CodeConstraintViolation,
		"Referenced region does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidCountryID = apperror.New(
		apperror.CodeValidationError,
		"Invalid country ID, expected a 2-letter code",
		http.StatusBadRequest,
	)
)
