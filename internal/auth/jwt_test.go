package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator(
		"access-secret",
		"refresh-secret",
		"yvrfountains",
		"yvrfountains",
		time.Hour,
		24*time.Hour,
	)
}

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	token, err := a.ValidateAccessToken(access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "yvrfountains", claims["iss"])
	assert.NotEmpty(t, claims["jti"])

	refreshToken, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshToken.Valid)
}

// An access token must never pass refresh validation and vice versa; the
// two are signed with different secrets.
func TestJWTAuthenticator_SecretsAreNotInterchangeable(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42, "admin")
	require.NoError(t, err)

	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = a.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTAuthenticator_RejectsExpired(t *testing.T) {
	a := NewJWTAuthenticator(
		"access-secret",
		"refresh-secret",
		"yvrfountains",
		"yvrfountains",
		-time.Minute,
		-time.Minute,
	)

	access, _, err := a.GenerateTokens(42, "admin")
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTAuthenticator_RejectsForeignSignature(t *testing.T) {
	a := newTestAuthenticator()
	other := NewJWTAuthenticator(
		"different-secret",
		"different-refresh",
		"yvrfountains",
		"yvrfountains",
		time.Hour,
		24*time.Hour,
	)

	access, _, err := other.GenerateTokens(42, "admin")
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTAuthenticator_RejectsUnsignedToken(t *testing.T) {
	a := newTestAuthenticator()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": int64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}
