package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
	assert.Equal(t, DefaultTTL, service.ttl)
}

func TestNewServiceWithTTL_NonPositiveUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewServiceWithTTL("k", 0).ttl)
	assert.Equal(t, time.Minute, NewServiceWithTTL("k", time.Minute).ttl)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-456", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user-456", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = service.ValidateToken("")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "member")
	require.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewServiceWithTTL("test-secret-key", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken("user-123", "member")
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	service := NewService("test-secret-key")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123", Role: "admin"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
