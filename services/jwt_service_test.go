package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, err := svc.GenerateToken("user-123", "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "mercato-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.GenerateToken("", "jane@example.com")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signer := &JWTService{secretKey: "secret-a"}
	verifier := &JWTService{secretKey: "secret-b"}

	token, err := signer.GenerateToken("user-123", "jane@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTIsUniquePerToken(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	first, err := svc.GenerateToken("user-123", "jane@example.com")
	require.NoError(t, err)
	second, err := svc.GenerateToken("user-123", "jane@example.com")
	require.NoError(t, err)

	a, err := svc.ValidateToken(first)
	require.NoError(t, err)
	b, err := svc.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
