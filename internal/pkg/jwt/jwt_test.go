//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "driver@example.com", user.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "driver@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := jwt.NewService("issuer-secret", time.Hour)
	verifier := jwt.NewService("other-secret", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), "driver@example.com", user.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "driver@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
