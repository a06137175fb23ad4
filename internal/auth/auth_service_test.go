package auth_test

import (
	"context"
	"testing"

	"go-hrm/internal/auth"
	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

type fakeUserRepo struct {
	users  map[int]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]user.User), nextID: 1}
}

func (f *fakeUserRepo) Tx(ctx context.Context, fn func(user.Repository) error) error {
	return fn(f)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if u.UserID == 0 {
		u.UserID = f.nextID
		f.nextID++
	}
	f.users[u.UserID] = *u
	return nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	f.users[u.UserID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	delete(f.users, id)
	return nil
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	registered, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "Jane@Example.com",
		Username: "jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", registered.Email)
	assert.False(t, registered.IsAdmin)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, registered.UserID, resp.User.UserID)

	// The token must carry the identity claims the middleware reads.
	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(registered.UserID), claims["user_id"])
	assert.Equal(t, "jane", claims["username"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestAuthService_RegisterStoresProfileNames(t *testing.T) {
	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	first := "Jane"
	last := "Doe"
	registered, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		FirstName: &first,
		LastName:  &last,
		Password:  "correct-horse",
	})
	require.NoError(t, err)
	require.NotNil(t, registered.FirstName)
	require.NotNil(t, registered.LastName)
	assert.Equal(t, "Jane", *registered.FirstName)
	assert.Equal(t, "Doe", *registered.LastName)

	me, err := svc.GetMe(context.Background(), registered.UserID)
	require.NoError(t, err)
	require.NotNil(t, me.FirstName)
	assert.Equal(t, "Jane", *me.FirstName)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "jane",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := auth.NewService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "other@example.com",
		Username: "jane",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, usererrors.ErrUsernameAlreadyExists)

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane2",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyExists)
}

func TestAuthService_AdminTokenLifetime(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	require.NoError(t, repo.Create(context.Background(), &user.User{
		Email:        "root@example.com",
		Username:     "root",
		PasswordHash: mustHash(t, "admin-pass"),
		IsAdmin:      true,
	}))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "root",
		Password: "admin-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
	assert.True(t, resp.User.IsAdmin)
}

func TestAuthService_GetMe(t *testing.T) {
	repo := newFakeUserRepo()
	svc := auth.NewService(repo)

	registered, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	me, err := svc.GetMe(context.Background(), registered.UserID)
	require.NoError(t, err)
	assert.Equal(t, registered, me)

	_, err = svc.GetMe(context.Background(), 999)
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
