package jwt

import (
	"testing"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	adminID := "b3f1c9c2-1111-4222-8333-444455556666"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", user.RoleEmployee, &adminID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	got := func(key string) interface{} {
		v, ok := token.Get(key)
		require.True(t, ok, "claim %q missing", key)
		return v
	}
	assert.Equal(t, "user-1", got("user_id"))
	assert.Equal(t, "employee", got("role"))
	assert.Equal(t, adminID, got("admin_id"))
	assert.Equal(t, "access", got("type"))
}

func TestGenerateAccessToken_NilAdminID(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("admin-1", user.RoleAdmin, nil)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	adminID, _ := token.Get("admin_id")
	assert.Nil(t, adminID)
}

func TestValidateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("user-9")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-9", userID)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("user-9", user.RoleAdmin, nil)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", user.RoleAdmin, nil)
	assert.Error(t, err)
}
