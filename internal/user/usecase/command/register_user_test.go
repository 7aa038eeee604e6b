package command

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/user/repository"
	"github.com/YarenOpuz/smart-stock/pkg/auth"
)

func setupUserRepo(t *testing.T) domain.UserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	return repository.NewGormUserRepository(db)
}

func TestRegisterUser(t *testing.T) {
	repo := setupUserRepo(t)
	handler := NewRegisterUserHandler(repo, nil)

	user, err := handler.Handle(context.Background(), RegisterUserCommand{
		Email:    "yaren@example.com",
		Password: "password",
		FullName: "Yaren Opuz",
		UserType: "owner",
	})
	require.NoError(t, err)

	require.NotZero(t, user.ID)
	require.Equal(t, "yaren@example.com", user.Email)
	require.True(t, user.IsActive)
	require.NotEqual(t, "password", user.Password, "password must be stored hashed")
	require.True(t, auth.CheckPassword(user.Password, "password"))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t)
	handler := NewRegisterUserHandler(repo, nil)

	cmd := RegisterUserCommand{Email: "yaren@example.com", Password: "password"}

	_, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterUserValidation(t *testing.T) {
	repo := setupUserRepo(t)
	handler := NewRegisterUserHandler(repo, nil)

	cases := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"empty email", RegisterUserCommand{Password: "password"}},
		{"email without at sign", RegisterUserCommand{Email: "not-an-email", Password: "password"}},
		{"empty password", RegisterUserCommand{Email: "a@b.com"}},
		{"short password", RegisterUserCommand{Email: "a@b.com", Password: "abc"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			require.Error(t, err)
		})
	}
}

func TestLoginUser(t *testing.T) {
	repo := setupUserRepo(t)
	register := NewRegisterUserHandler(repo, nil)
	login := NewLoginUserHandler(repo, 30*time.Minute)

	_, err := register.Handle(context.Background(), RegisterUserCommand{
		Email:    "yaren@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	resp, err := login.Handle(LoginUserCommand{Email: "yaren@example.com", Password: "password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "yaren@example.com", resp.User.Email)

	claims, err := auth.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "yaren@example.com", claims.Subject)
}

func TestLoginUserWrongPassword(t *testing.T) {
	repo := setupUserRepo(t)
	register := NewRegisterUserHandler(repo, nil)
	login := NewLoginUserHandler(repo, 30*time.Minute)

	_, err := register.Handle(context.Background(), RegisterUserCommand{
		Email:    "yaren@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	_, err = login.Handle(LoginUserCommand{Email: "yaren@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = login.Handle(LoginUserCommand{Email: "nobody@example.com", Password: "password"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := setupUserRepo(t)
	login := NewLoginUserHandler(repo, 30*time.Minute)

	hashed, err := auth.HashPassword("password")
	require.NoError(t, err)

	// Create then deactivate: a zero-value bool would be replaced by the
	// column default on insert
	user := &domain.User{Email: "yaren@example.com", Password: hashed, IsActive: true}
	require.NoError(t, repo.Create(user))
	user.IsActive = false
	require.NoError(t, repo.Update(user))

	_, err = login.Handle(LoginUserCommand{Email: "yaren@example.com", Password: "password"})
	require.ErrorIs(t, err, domain.ErrInactiveUser)
}
