package user

import (
	"context"
	"errors"

	"go-hrm/internal/shared/apperror"
	usererrors "go-hrm/internal/user/errors"

	"gorm.io/gorm"
)

// validateUnique rejects a username or email already held by a different user.
// selfID is zero on create.
func validateUnique(ctx context.Context, qtx Repository, username, email string, selfID int) error {
	existing, err := qtx.FindByUsername(ctx, username)
	if err == nil && existing.UserID != selfID {
		return usererrors.ErrUsernameAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ClassifyStorage(err)
	}

	existing, err = qtx.FindByEmail(ctx, email)
	if err == nil && existing.UserID != selfID {
		return usererrors.ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ClassifyStorage(err)
	}

	return nil
}
