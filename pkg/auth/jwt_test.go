package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("yaren@example.com", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "yaren@example.com", claims.Subject)
	require.Equal(t, "yaren@example.com", claims.Email)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateToken("yaren@example.com", -1*time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken("yaren@example.com", 30*time.Minute)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, "password", hash)

	require.True(t, CheckPassword(hash, "password"))
	require.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("password")
	require.NoError(t, err)
	second, err := HashPassword("password")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "bcrypt hashes must be salted")
}
