package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndGetClaims(token, testSecret)
	require.NoError(t, err)

	id, ok := claims["id"].(float64)
	require.True(t, ok, "id claim should decode as a number")
	assert.Equal(t, float64(42), id)
	assert.NotNil(t, claims["exp"])
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	_, err := GenerateToken(1, "")
	assert.Error(t, err)
}

func TestGenerateChatTokenRoundTrip(t *testing.T) {
	token, err := GenerateChatToken(7, testSecret)
	require.NoError(t, err)

	claims, err := ValidateAndGetClaims(token, testSecret)
	require.NoError(t, err)

	sub, ok := claims["sub"].(string)
	require.True(t, ok)
	assert.Equal(t, "7", sub)
	assert.Nil(t, claims["exp"], "chat tokens do not expire")
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, testSecret)
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateAndGetClaims("not.a.token", testSecret)
	assert.Error(t, err)
}
