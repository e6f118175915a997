package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Manager defines the interface for secrets management
type Manager interface {
	// GetSecret retrieves a secret by key
	GetSecret(ctx context.Context, key string) (string, error)

	// GetSecretJSON retrieves a secret and unmarshals it as JSON
	GetSecretJSON(ctx context.Context, key string, dest interface{}) error

	// RefreshCache forces a refresh of the cache
	RefreshCache(ctx context.Context) error

	// Close closes any resources held by the manager
	Close() error
}

// Config holds secrets manager configuration
type Config struct {
	Backend        string        // "env" or "aws-secrets-manager"
	AWSRegion      string        // AWS region for Secrets Manager
	CacheDuration  time.Duration // How long to cache secrets
	RefreshOnStart bool          // Whether to refresh cache on startup
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Backend:        "env",
		AWSRegion:      "eu-west-3",
		CacheDuration:  5 * time.Minute,
		RefreshOnStart: false,
	}
}

// NewManager creates a new secrets manager based on configuration
func NewManager(cfg Config) (Manager, error) {
	switch cfg.Backend {
	case "aws-secrets-manager", "aws":
		log.Printf("🔐 Initializing AWS Secrets Manager (region: %s)", cfg.AWSRegion)
		return NewAWSSecretsManager(cfg)
	case "env", "environment":
		log.Printf("🔐 Using environment variables for secrets (development mode)")
		return NewEnvironmentManager(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// EnvironmentManager loads secrets from environment variables
type EnvironmentManager struct {
	cache    map[string]string
	cacheMu  sync.RWMutex
	config   Config
	cacheExp time.Time
}

// NewEnvironmentManager creates a new environment-based secrets manager
func NewEnvironmentManager(cfg Config) *EnvironmentManager {
	return &EnvironmentManager{
		cache:  make(map[string]string),
		config: cfg,
	}
}

// GetSecret retrieves a secret from environment variables
func (m *EnvironmentManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.getCached(key); ok {
		return value, nil
	}

	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("secret not found: %s", key)
	}

	m.setCached(key, value)

	return value, nil
}

// GetSecretJSON retrieves a secret and unmarshals it as JSON
func (m *EnvironmentManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache clears the cache (forces reload on next access)
func (m *EnvironmentManager) RefreshCache(ctx context.Context) error {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	m.cache = make(map[string]string)
	m.cacheExp = time.Time{}

	return nil
}

// Close is a no-op for environment manager
func (m *EnvironmentManager) Close() error {
	return nil
}

func (m *EnvironmentManager) getCached(key string) (string, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	if time.Now().After(m.cacheExp) {
		return "", false
	}

	value, ok := m.cache[key]
	return value, ok
}

func (m *EnvironmentManager) setCached(key, value string) {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	m.cache[key] = value
	if m.cacheExp.IsZero() {
		m.cacheExp = time.Now().Add(m.config.CacheDuration)
	}
}

// AWSSecretsManager loads secrets from AWS Secrets Manager
type AWSSecretsManager struct {
	client  *secretsmanager.Client
	cache   map[string]cachedSecret
	cacheMu sync.RWMutex
	config  Config
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// NewAWSSecretsManager creates a new AWS Secrets Manager client
func NewAWSSecretsManager(cfg Config) (*AWSSecretsManager, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	manager := &AWSSecretsManager{
		client: secretsmanager.NewFromConfig(awsCfg),
		cache:  make(map[string]cachedSecret),
		config: cfg,
	}

	if cfg.RefreshOnStart {
		if err := manager.RefreshCache(context.Background()); err != nil {
			log.Printf("⚠️ Failed to refresh secrets cache on startup: %v", err)
		}
	}

	log.Printf("✅ AWS Secrets Manager initialized (cache duration: %s)", cfg.CacheDuration)

	return manager, nil
}

// GetSecret retrieves a secret from AWS Secrets Manager
func (m *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.getCachedAWS(key); ok {
		return value, nil
	}

	result, err := m.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", key, err)
	}

	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", key)
	}
	secretValue := *result.SecretString

	m.setCachedAWS(key, secretValue)

	log.Printf("✅ Loaded secret from AWS Secrets Manager: %s", key)

	return secretValue, nil
}

// GetSecretJSON retrieves a secret and unmarshals it as JSON
func (m *AWSSecretsManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache forces a reload of all cached secrets
func (m *AWSSecretsManager) RefreshCache(ctx context.Context) error {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	m.cache = make(map[string]cachedSecret)

	return nil
}

// Close is a no-op; the AWS client holds no resources that need cleanup
func (m *AWSSecretsManager) Close() error {
	return nil
}

func (m *AWSSecretsManager) getCachedAWS(key string) (string, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	cached, ok := m.cache[key]
	if !ok {
		return "", false
	}

	if time.Now().After(cached.expiresAt) {
		return "", false
	}

	return cached.value, true
}

func (m *AWSSecretsManager) setCachedAWS(key, value string) {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	m.cache[key] = cachedSecret{
		value:     value,
		expiresAt: time.Now().Add(m.config.CacheDuration),
	}
}
