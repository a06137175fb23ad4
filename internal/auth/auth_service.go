package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Token lifetimes: admins get a long-lived session, everyone else one hour.
const (
	userTokenTTL  = time.Hour
	adminTokenTTL = 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserInfo, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMe(ctx context.Context, userID int) (UserInfo, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserInfo, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserInfo{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to hash password", http.StatusInternalServerError)
	}

	var created user.User
	err = s.users.Tx(ctx, func(qtx user.Repository) error {
		if existing, err := qtx.FindByUsername(ctx, req.Username); err == nil && existing.UserID != 0 {
			return usererrors.ErrUsernameAlreadyExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ClassifyStorage(err)
		}

		if existing, err := qtx.FindByEmail(ctx, req.Email); err == nil && existing.UserID != 0 {
			return usererrors.ErrEmailAlreadyExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ClassifyStorage(err)
		}

		// Self-registration never grants admin.
		u := user.User{
			Email:        req.Email,
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: string(hashed),
			IsAdmin:      false,
		}

		if err := qtx.Create(ctx, &u); err != nil {
			if apperror.IsUniqueViolation(err, "uq_user_username") {
				return usererrors.ErrUsernameAlreadyExists
			}
			if apperror.IsUniqueViolation(err, "uq_user_email") {
				return usererrors.ErrEmailAlreadyExists
			}
			return apperror.ClassifyStorage(err)
		}

		created = u
		return nil
	})
	if err != nil {
		return UserInfo{}, err
	}

	s.logger.Info("user registered",
		zap.Int("user_id", created.UserID),
		zap.String("username", created.Username),
	)

	return mapToUserInfo(created), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, apperror.ClassifyStorage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	ttl := userTokenTTL
	if u.IsAdmin {
		ttl = adminTokenTTL
	}

	token, err := generateToken(*u, ttl)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in",
		zap.Int("user_id", u.UserID),
		zap.String("username", u.Username),
	)

	return LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(ttl.Seconds()),
		User:      mapToUserInfo(*u),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID int) (UserInfo, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserInfo{}, autherrors.ErrUserNotFound
		}
		return UserInfo{}, apperror.ClassifyStorage(err)
	}
	return mapToUserInfo(*u), nil
}

func generateToken(u user.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.UserID,
		"username": u.Username,
		"is_admin": u.IsAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserInfo(u user.User) UserInfo {
	return UserInfo{
		UserID:    u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
	}
}
