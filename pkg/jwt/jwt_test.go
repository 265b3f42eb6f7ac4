package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(42, "alice@techvault.com", "Alice", "ADMIN", "v1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice@techvault.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "v1", claims.TokenVersion)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(42, "alice@techvault.com", "Alice", "ADMIN", "v1")
	require.NoError(t, err)

	_, err = ValidateToken(token[:len(token)-2] + "xx")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
