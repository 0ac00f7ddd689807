package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(42, "google-abc", "player@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "google-abc", claims.GoogleID)
	assert.Equal(t, "player@example.com", claims.Email)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	InitJWT("test-secret")

	past := time.Now().Add(-time.Hour).Unix()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": int64(42),
		"exp": past,
		"iat": past,
		"nbf": past,
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(signed)
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("other-secret")
	token, err := GenerateJWT(42, "google-abc", "player@example.com")
	require.NoError(t, err)

	InitJWT("test-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}
