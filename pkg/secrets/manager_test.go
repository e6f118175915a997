package secrets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envManager() *EnvironmentManager {
	return NewEnvironmentManager(Config{
		Backend:       "env",
		CacheDuration: time.Minute,
	})
}

func TestEnvironmentManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Read secret from environment", func(t *testing.T) {
		t.Setenv("CLIPTOKK_TEST_SECRET", "test-value")

		value, err := envManager().GetSecret(ctx, "CLIPTOKK_TEST_SECRET")

		require.NoError(t, err)
		assert.Equal(t, "test-value", value)
	})

	t.Run("Failure - Missing secret", func(t *testing.T) {
		_, err := envManager().GetSecret(ctx, "CLIPTOKK_MISSING_SECRET")

		require.Error(t, err)
	})

	t.Run("Success - Cached value survives env change", func(t *testing.T) {
		manager := envManager()
		t.Setenv("CLIPTOKK_CACHED_SECRET", "initial")

		first, err := manager.GetSecret(ctx, "CLIPTOKK_CACHED_SECRET")
		require.NoError(t, err)

		t.Setenv("CLIPTOKK_CACHED_SECRET", "changed")

		second, err := manager.GetSecret(ctx, "CLIPTOKK_CACHED_SECRET")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Success - RefreshCache reloads from environment", func(t *testing.T) {
		manager := envManager()
		t.Setenv("CLIPTOKK_REFRESH_SECRET", "initial")

		_, err := manager.GetSecret(ctx, "CLIPTOKK_REFRESH_SECRET")
		require.NoError(t, err)

		t.Setenv("CLIPTOKK_REFRESH_SECRET", "updated")
		require.NoError(t, manager.RefreshCache(ctx))

		value, err := manager.GetSecret(ctx, "CLIPTOKK_REFRESH_SECRET")
		require.NoError(t, err)
		assert.Equal(t, "updated", value)
	})
}

func TestNewManager(t *testing.T) {
	t.Run("Success - Environment backend", func(t *testing.T) {
		manager, err := NewManager(Config{Backend: "env", CacheDuration: time.Minute})

		require.NoError(t, err)
		require.NotNil(t, manager)
		assert.NoError(t, manager.Close())
	})

	t.Run("Success - Environment backend alternative name", func(t *testing.T) {
		manager, err := NewManager(Config{Backend: "environment", CacheDuration: time.Minute})

		require.NoError(t, err)
		require.NotNil(t, manager)
	})

	t.Run("Failure - Unsupported backend", func(t *testing.T) {
		_, err := NewManager(Config{Backend: "vault", CacheDuration: time.Minute})

		require.Error(t, err)
	})
}

func TestLoadHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadString falls back when missing", func(t *testing.T) {
		t.Setenv("CLIPTOKK_LOAD_SECRET", "present")
		manager := envManager()

		assert.Equal(t, "present", LoadString(ctx, manager, "CLIPTOKK_LOAD_SECRET", "fallback"))
		assert.Equal(t, "fallback", LoadString(ctx, manager, "CLIPTOKK_ABSENT_SECRET", "fallback"))
	})

	t.Run("LoadStringRequired errors when missing", func(t *testing.T) {
		t.Setenv("CLIPTOKK_REQUIRED_SECRET", "present")
		manager := envManager()

		value, err := LoadStringRequired(ctx, manager, "CLIPTOKK_REQUIRED_SECRET")
		require.NoError(t, err)
		assert.Equal(t, "present", value)

		_, err = LoadStringRequired(ctx, manager, "CLIPTOKK_ABSENT_REQUIRED")
		require.Error(t, err)
	})
}

func TestLoadCommonSecrets(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - All secrets present", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "jwt-secret")
		t.Setenv("DATABASE_URL", "postgres://localhost/cliptokk")
		t.Setenv("REDIS_URL", "redis://localhost:6379")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

		common, err := LoadCommonSecrets(ctx, envManager())

		require.NoError(t, err)
		assert.Equal(t, "jwt-secret", common.JWTSecret)
		assert.Equal(t, "postgres://localhost/cliptokk", common.DatabaseURL)
		assert.Equal(t, "redis://localhost:6379", common.RedisURL)
		assert.Equal(t, "sk_test_123", common.StripeSecretKey)
		assert.Empty(t, common.SendGridAPIKey)
	})

	t.Run("Failure - Missing required secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "jwt-secret")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("REDIS_URL", "redis://localhost:6379")

		_, err := LoadCommonSecrets(ctx, envManager())

		require.Error(t, err)
	})
}

func TestAutoDetectBackend(t *testing.T) {
	t.Run("Defaults to env", func(t *testing.T) {
		t.Setenv("AWS_SECRETS_MANAGER_ENABLED", "")
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_EXECUTION_ENV", "")

		assert.Equal(t, "env", AutoDetectBackend())
	})

	t.Run("Explicit opt-in", func(t *testing.T) {
		t.Setenv("AWS_SECRETS_MANAGER_ENABLED", "true")

		assert.Equal(t, "aws-secrets-manager", AutoDetectBackend())
	})

	t.Run("Detected from AWS runtime environment", func(t *testing.T) {
		t.Setenv("AWS_SECRETS_MANAGER_ENABLED", "")
		t.Setenv("AWS_REGION", "eu-west-3")
		t.Setenv("AWS_EXECUTION_ENV", "AWS_ECS_FARGATE")

		assert.Equal(t, "aws-secrets-manager", AutoDetectBackend())
	})
}
