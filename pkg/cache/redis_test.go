package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "missions:list:active", `{"data":[]}`, 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "missions:list:active")
	require.NoError(t, err)
	assert.Equal(t, `{"data":[]}`, val)
}

func TestClient_GetMissingKey(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "missions:missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "wallet:balance:1", "42.50", 1*time.Hour)
	_ = client.Set(ctx, "wallet:balance:2", "7.00", 1*time.Hour)

	err := client.Delete(ctx, "wallet:balance:1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "wallet:balance:1")
	assert.Error(t, err)

	val, err := client.Get(ctx, "wallet:balance:2")
	require.NoError(t, err)
	assert.Equal(t, "7.00", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "analytics:leaderboard:month", "[]", 1*time.Hour)

	exists, err := client.Exists(ctx, "analytics:leaderboard:month")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Exists(ctx, "analytics:leaderboard:7d")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Invalidation-on-write wipes a whole namespace, not single keys.
	_ = client.Set(ctx, "missions:list:active:1", "a", 1*time.Hour)
	_ = client.Set(ctx, "missions:list:paused:1", "b", 1*time.Hour)
	_ = client.Set(ctx, "analytics:leaderboard:month", "c", 1*time.Hour)

	err := client.DeletePattern(ctx, "missions:*")
	require.NoError(t, err)

	exists, _ := client.Exists(ctx, "missions:list:active:1")
	assert.False(t, exists)
	exists, _ = client.Exists(ctx, "missions:list:paused:1")
	assert.False(t, exists)

	// Other namespaces untouched
	exists, _ = client.Exists(ctx, "analytics:leaderboard:month")
	assert.True(t, exists)
}

func TestClient_TTLAndExpire(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "missions:detail:5", "{}", 5*time.Minute)

	ttl, err := client.TTL(ctx, "missions:detail:5")
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= 5*time.Minute)

	err = client.Expire(ctx, "missions:detail:5", time.Minute)
	require.NoError(t, err)

	ttl, err = client.TTL(ctx, "missions:detail:5")
	require.NoError(t, err)
	assert.True(t, ttl <= time.Minute)
}
