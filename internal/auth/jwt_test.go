// File: internal/auth/jwt_test.go
package auth

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
    token, err := GenerateJWT(42, "test-secret")
    require.NoError(t, err)
    require.NotEmpty(t, token)

    userID, err := ValidateToken(token, "test-secret")
    require.NoError(t, err)
    assert.Equal(t, uint(42), userID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
    token, err := GenerateJWT(42, "test-secret")
    require.NoError(t, err)

    _, err = ValidateToken(token, "other-secret")
    assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
    _, err := ValidateToken("not.a.token", "test-secret")
    assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
    _, err := GenerateJWT(42, "")
    assert.Error(t, err)
}
