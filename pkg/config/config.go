package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Storage backend names used in STORAGE_BACKEND config field.
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	ListenAddr string `conf:"default::8080,env:LISTEN_ADDR"`

	// Storage
	StorageBackend string `conf:"default:memory,enum:memory|sql,env:STORAGE_BACKEND"`
	DatabaseURL    string `conf:"default:file:inventory.db,env:DATABASE_URL"`
	PhotoDir       string `conf:"default:./data/photos,env:PHOTO_DIR"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:inventoryd,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces deployment requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.StorageBackend == BackendMemory {
		errs = append(errs, "STORAGE_BACKEND=memory loses all items on restart; use 'sql' in production")
	}

	if cfg.StorageBackend == BackendSQL && strings.TrimSpace(cfg.DatabaseURL) == "" {
		errs = append(errs, "DATABASE_URL must be set when STORAGE_BACKEND=sql")
	}

	if cfg.CORSAllowedOrigins == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must not be '*' in production")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
