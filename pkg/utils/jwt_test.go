package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewJWTManager("test-secret", "gameforge-api")

	token, err := m.GenerateToken("user-1", true, "access", time.Minute)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "gameforge-api", claims.Issuer)
}

func TestGenerateTokenPair(t *testing.T) {
	m := NewJWTManager("test-secret", "gameforge-api")

	pair, err := m.GenerateTokenPair("user-2", false, time.Minute, time.Hour)
	require.NoError(t, err)

	access, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", access.Type)
	assert.False(t, access.IsAdmin)

	refresh, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh.Type)
	assert.Equal(t, "user-2", refresh.UserID)
}

func TestParseTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", "gameforge-api")

	token, err := m.GenerateToken("user-3", false, "access", -time.Minute)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", "gameforge-api")
	other := NewJWTManager("other-secret", "gameforge-api")

	token, err := m.GenerateToken("user-4", false, "access", time.Minute)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", "gameforge-api")
	_, err := m.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
