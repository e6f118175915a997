package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(123, "clipper@cliptokk.com", "clipper", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, 123, claims.UserID)
	assert.Equal(t, "clipper@cliptokk.com", claims.Email)
	assert.Equal(t, "clipper", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "admin@cliptokk.com", "admin", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "a-different-secret-entirely-32-chars")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(1, "creator@cliptokk.com", "creator", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.jwt", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	blacklist := NewTokenBlacklist(cacheClient)
	ctx := context.Background()

	token, err := GenerateJWT(7, "clipper@cliptokk.com", "clipper", testSecret, 24)
	require.NoError(t, err)

	// Valid before revocation
	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	// Revoked after logout
	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}
