package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Errorf("StorageBackend = %q, want memory", cfg.StorageBackend)
	}
	if cfg.DatabaseURL != "file:inventory.db" {
		t.Errorf("DatabaseURL = %q, want file:inventory.db", cfg.DatabaseURL)
	}
	if cfg.PhotoDir != "./data/photos" {
		t.Errorf("PhotoDir = %q, want ./data/photos", cfg.PhotoDir)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.ServiceName != "inventoryd" {
		t.Errorf("ServiceName = %q, want inventoryd", cfg.ServiceName)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("STORAGE_BACKEND", "sql")
	t.Setenv("DATABASE_URL", "postgres://localhost/inventory")
	t.Setenv("PHOTO_DIR", "/var/lib/inventoryd/photos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.StorageBackend != BackendSQL {
		t.Errorf("StorageBackend = %q, want sql", cfg.StorageBackend)
	}
	if cfg.DatabaseURL != "postgres://localhost/inventory" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.PhotoDir != "/var/lib/inventoryd/photos" {
		t.Errorf("PhotoDir = %q", cfg.PhotoDir)
	}
}

func TestValidateForProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:        EnvProduction,
			StorageBackend:     BackendSQL,
			DatabaseURL:        "postgres://db/inventory",
			CORSAllowedOrigins: "https://app.example.com",
			LogLevel:           "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(c *Config) {}, ""},
		{"non-production skips checks", func(c *Config) {
			c.Environment = EnvDevelopment
			c.StorageBackend = BackendMemory
			c.CORSAllowedOrigins = "*"
		}, ""},
		{"memory backend rejected", func(c *Config) { c.StorageBackend = BackendMemory }, "STORAGE_BACKEND"},
		{"empty database url rejected", func(c *Config) { c.DatabaseURL = "  " }, "DATABASE_URL"},
		{"wildcard cors rejected", func(c *Config) { c.CORSAllowedOrigins = "*" }, "CORS_ALLOWED_ORIGINS"},
		{"debug log level rejected", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
