package usererrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same username already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeValidationError,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
