package secrets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadString loads a secret as a string with optional fallback
func LoadString(ctx context.Context, m Manager, key, fallback string) string {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return fallback
	}
	return value
}

// LoadStringRequired loads a required secret (fails if not found)
func LoadStringRequired(ctx context.Context, m Manager, key string) (string, error) {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return "", fmt.Errorf("required secret %s not found: %w", key, err)
	}
	if value == "" {
		return "", fmt.Errorf("required secret %s is empty", key)
	}
	return value, nil
}

// CommonSecrets holds the credentials the API needs at startup
type CommonSecrets struct {
	JWTSecret           string
	DatabaseURL         string
	RedisURL            string
	StripeSecretKey     string
	StripeWebhookSecret string
	SendGridAPIKey      string
	SlackWebhookURL     string
}

// LoadCommonSecrets loads all common secrets from the manager
func LoadCommonSecrets(ctx context.Context, m Manager) (*CommonSecrets, error) {
	secrets := &CommonSecrets{}

	jwtSecret, err := LoadStringRequired(ctx, m, "JWT_SECRET")
	if err != nil {
		return nil, err
	}
	secrets.JWTSecret = jwtSecret

	dbURL, err := LoadStringRequired(ctx, m, "DATABASE_URL")
	if err != nil {
		return nil, err
	}
	secrets.DatabaseURL = dbURL

	redisURL, err := LoadStringRequired(ctx, m, "REDIS_URL")
	if err != nil {
		return nil, err
	}
	secrets.RedisURL = redisURL

	// Optional integrations
	secrets.StripeSecretKey = LoadString(ctx, m, "STRIPE_SECRET_KEY", "")
	secrets.StripeWebhookSecret = LoadString(ctx, m, "STRIPE_WEBHOOK_SECRET", "")
	secrets.SendGridAPIKey = LoadString(ctx, m, "SENDGRID_API_KEY", "")
	secrets.SlackWebhookURL = LoadString(ctx, m, "SLACK_WEBHOOK_URL", "")

	return secrets, nil
}

// AutoDetectBackend determines the secrets backend from environment
func AutoDetectBackend() string {
	if getEnvBool("AWS_SECRETS_MANAGER_ENABLED") {
		return "aws-secrets-manager"
	}

	// Running on AWS infrastructure
	if getEnv("AWS_REGION") != "" && getEnv("AWS_EXECUTION_ENV") != "" {
		return "aws-secrets-manager"
	}

	return "env"
}

// AutoDetectConfig creates a config with auto-detected backend
func AutoDetectConfig() Config {
	cfg := Config{
		Backend:        AutoDetectBackend(),
		AWSRegion:      getEnv("AWS_REGION"),
		CacheDuration:  5 * time.Minute,
		RefreshOnStart: false,
	}

	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "eu-west-3"
	}

	return cfg
}

func getEnv(key string) string {
	return os.Getenv(key)
}

func getEnvBool(key string) bool {
	value := os.Getenv(key)
	if value == "" {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
