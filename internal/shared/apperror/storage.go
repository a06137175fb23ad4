package apperror

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique-index violation. When
// constraint is non-empty the violated constraint name must match too, so a
// race lost on a specific index can map to a specific conflict error.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return constraint == "" || pgErr.ConstraintName == constraint
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "duplicate key value") {
		return false
	}
	return constraint == "" || strings.Contains(msg, strings.ToLower(constraint))
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// rejection from the storage engine.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint")
}

// IsUnavailable reports whether err looks like a connectivity failure rather
// than a data-level rejection. Connectivity failures surface as 503, never as
// a constraint error.
func IsUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "broken pipe")
}

// ClassifyStorage re-classifies an unexpected storage error. NotFound and
// conflicts are expected to be handled by the caller first; everything that
// remains is either unavailability or an internal error.
func ClassifyStorage(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if IsUnavailable(err) {
		return Wrap(err, CodeServiceUnavailable, ErrStorageUnavailable.Message, ErrStorageUnavailable.HTTPStatus)
	}
	return Wrap(err, CodeInternalError, ErrInternal.Message, ErrInternal.HTTPStatus)
}
