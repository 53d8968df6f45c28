package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hithesh05/chroma-shop-essence/models"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)
}

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	user := models.User{ID: 2, Name: "Admin User", Email: "admin@example.com", IsAdmin: true}
	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService("secret-a")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b")
	require.NoError(t, err)

	token, err := issuer.Generate(models.User{ID: 1, Email: "user@example.com"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}
