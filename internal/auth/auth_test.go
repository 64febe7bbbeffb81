package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, true)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsStaff)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, false)
	require.NoError(t, err)

	_, err = ValidateToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidateToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testUser123")
	require.NoError(t, err)
	assert.NotEqual(t, "testUser123", hash)
	assert.True(t, CheckPassword(hash, "testUser123"))
	assert.False(t, CheckPassword(hash, "wrongPassword"))
}
