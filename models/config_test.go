package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Endpoint != "http://localhost:5000/process" {
		t.Errorf("Endpoint = %q, want 'http://localhost:5000/process'", cfg.Endpoint)
	}
	if cfg.RequestTimeout() != config.DefaultRequestTimeout {
		t.Errorf("RequestTimeout() = %v, want %v", cfg.RequestTimeout(), config.DefaultRequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want 'info'", cfg.LogLevel)
	}
	if cfg.ServerAddr != ":5000" {
		t.Errorf("ServerAddr = %q, want ':5000'", cfg.ServerAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigPath(t *testing.T) {
	cfg := DefaultConfig()
	homeDir, _ := os.UserHomeDir()

	expected := filepath.Join(homeDir, ".config", "ocr-translator", "config.yaml")
	if got := cfg.ConfigPath(); got != expected {
		t.Errorf("ConfigPath() = %q, want %q", got, expected)
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if cfg.Endpoint != config.DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, config.DefaultEndpoint)
	}
	if cfg.ConfigPath() != path {
		t.Errorf("ConfigPath() = %q, want %q", cfg.ConfigPath(), path)
	}
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "endpoint: http://ocr.internal:8080/process\nrequest_timeout_seconds: 15\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if cfg.Endpoint != "http://ocr.internal:8080/process" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.RequestTimeout() != 15*time.Second {
		t.Errorf("RequestTimeout() = %v, want 15s", cfg.RequestTimeout())
	}
	if cfg.Level() != logger.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", cfg.Level())
	}
	// Keys absent from the file keep their defaults.
	if cfg.ServerAddr != config.DefaultServerAddr {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, config.DefaultServerAddr)
	}
}

func TestLoadConfigFrom_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: http://file:1/process\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OCRT_ENDPOINT", "http://env:2/process")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if cfg.Endpoint != "http://env:2/process" {
		t.Errorf("Endpoint = %q, want env override", cfg.Endpoint)
	}
}

func TestLoadConfigFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: [unterminated\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfigFrom(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Endpoint = "https://example.com/process"
	cfg.RequestTimeoutSeconds = 30
	cfg.LogLevel = "warn"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Endpoint != cfg.Endpoint || loaded.RequestTimeoutSeconds != 30 || loaded.LogLevel != "warn" {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"https", func(c *Config) { c.Endpoint = "https://x.example/process" }, false},
		{"no scheme", func(c *Config) { c.Endpoint = "localhost:5000/process" }, true},
		{"ftp", func(c *Config) { c.Endpoint = "ftp://host/process" }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeoutSeconds = -1 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_RequestTimeoutZeroUsesDefault(t *testing.T) {
	cfg := &Config{RequestTimeoutSeconds: 0}
	if cfg.RequestTimeout() != config.DefaultRequestTimeout {
		t.Errorf("RequestTimeout() = %v, want %v", cfg.RequestTimeout(), config.DefaultRequestTimeout)
	}
}
