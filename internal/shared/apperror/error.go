package apperror

import "fmt"

// AppError is the single error currency of the service layer. Handlers never
// inspect driver errors directly; repositories and services classify failures
// into an AppError before returning them upward.
type AppError struct {
	Code       string // machine-readable code (e.g. CONSTRAINT_VIOLATION)
	Message    string // human-readable message
	HTTPStatus int
	Err        error // wrapped cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a cause to a new AppError. Returns nil when err is nil so
// call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
