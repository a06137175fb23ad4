package user

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	usererrors "go-hrm/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id int) (UserResponse, error)
	Update(ctx context.Context, id int, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to hash password", http.StatusInternalServerError)
	}

	var created User
	err = s.repo.Tx(ctx, func(qtx Repository) error {
		if err := validateUnique(ctx, qtx, req.Username, req.Email, 0); err != nil {
			return err
		}

		u := User{
			Email:        req.Email,
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: string(hashed),
			IsAdmin:      req.IsAdmin,
		}

		if err := qtx.Create(ctx, &u); err != nil {
			return mapStorageError(err)
		}

		created = u
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id int) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateUserRequest) (UserResponse, error) {
	var updated User

	err := s.repo.Tx(ctx, func(qtx Repository) error {
		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if req.Email != nil {
			u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.Username != nil {
			u.Username = strings.TrimSpace(*req.Username)
		}
		if req.FirstName != nil {
			u.FirstName = req.FirstName
		}
		if req.LastName != nil {
			u.LastName = req.LastName
		}
		if req.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return apperror.Wrap(err, apperror.CodeInternalError, "Failed to hash password", http.StatusInternalServerError)
			}
			u.PasswordHash = string(hashed)
		}
		if req.IsAdmin != nil {
			u.IsAdmin = *req.IsAdmin
		}

		if err := validateUnique(ctx, qtx, u.Username, u.Email, u.UserID); err != nil {
			return err
		}

		if err := qtx.Update(ctx, u); err != nil {
			return mapStorageError(err)
		}

		updated = *u
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete user requested",
		zap.String("request_id", rid),
		zap.Int("user_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
}

func mapStorageError(err error) error {
	if apperror.IsUniqueViolation(err, "uq_user_username") {
		return usererrors.ErrUsernameAlreadyExists
	}
	if apperror.IsUniqueViolation(err, "uq_user_email") {
		return usererrors.ErrEmailAlreadyExists
	}
	return apperror.ClassifyStorage(err)
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
