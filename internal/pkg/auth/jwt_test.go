package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "camplink.test",
	})
}

func TestGenerateAdminToken_RoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateAdminToken()
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.RoleType)
	assert.Equal(t, "camplink.test", claims.Issuer)
	assert.Equal(t, "admin", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateAdminToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateAdminToken()
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "camplink.test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	// A bare token without the scheme is accepted as-is
	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
