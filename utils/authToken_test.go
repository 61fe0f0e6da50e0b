package utils

import (
	"testing"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func TestGenerateAndValidateTokens(t *testing.T) {
	setTestKey(t)

	access, refresh, err := GenerateTokens("42", models.RoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := ValidateToken(access, models.RoleAdmin, models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestValidateTokenRoleMismatch(t *testing.T) {
	setTestKey(t)

	token, err := GenerateAccessToken("7", models.RoleStaff)
	require.NoError(t, err)

	_, err = ValidateToken(token, models.RoleAdmin)
	assert.Error(t, err)
}

func TestValidateTokenWithoutRequiredRoles(t *testing.T) {
	setTestKey(t)

	token, err := GenerateAccessToken("7", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	setTestKey(t)

	token, err := GenerateAccessToken("7", models.RoleStaff)
	require.NoError(t, err)

	_, err = ValidateToken(token+"x", models.RoleStaff)
	assert.Error(t, err)
}
