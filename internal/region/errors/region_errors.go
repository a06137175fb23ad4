package regionerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrRegionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Region not found",
		http.StatusNotFound,
	)
	ErrRegionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Region with the same ID already exists",
		http.StatusConflict,
	)
	ErrRegionHasCountries = apperror.New(
		apperror.CodeConstraintViolation,
		"Region cannot be deleted while countries reference it",
		http.StatusBadRequest,
	)
	ErrInvalidRegionID = apperror.New(
		apperror.CodeValidationError,
		"Invalid region ID",
		http.StatusBadRequest,
	)
)
