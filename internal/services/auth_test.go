package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtools-pro/backend/internal/config"
)

func testAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  ttl,
		},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	auth := testAuthService(time.Hour)
	userID := uuid.New()

	token, err := auth.GenerateToken(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	auth := testAuthService(time.Hour)
	other := NewAuthService(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "different-secret", TokenTTL: time.Hour},
	})

	token, err := auth.GenerateToken(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	// Negative TTL bypasses the constructor default to mint an
	// already-expired token.
	auth := &AuthService{jwtSecret: []byte("test-secret"), tokenTTL: -time.Minute}

	token, err := auth.GenerateToken(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	auth := testAuthService(time.Hour)

	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenTTL_DefaultsToSevenDays(t *testing.T) {
	auth := testAuthService(0)

	token, err := auth.GenerateToken(uuid.New(), "user@example.com")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 7*24*time.Hour, lifetime)
}

func TestPasswordHashing(t *testing.T) {
	auth := testAuthService(time.Hour)

	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-password"))
	assert.False(t, auth.CheckPassword(hash, "wrong-password"))
	assert.False(t, auth.CheckPassword("not-a-hash", "s3cret-password"))
}
