package models

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
)

// EnvPrefix is prepended to environment overrides, e.g. OCRT_ENDPOINT.
const EnvPrefix = "OCRT"

// Config holds application settings
type Config struct {
	// Endpoint is the URL submissions are POSTed to.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// RequestTimeoutSeconds bounds a single submission, 0 means the default.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// ServerAddr is the listen address of the dev processing server.
	ServerAddr string `mapstructure:"server_addr" yaml:"server_addr"`

	path string
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint:              config.DefaultEndpoint,
		RequestTimeoutSeconds: int(config.DefaultRequestTimeout / time.Second),
		LogLevel:              config.DefaultLogLevel,
		ServerAddr:            config.DefaultServerAddr,
	}
}

// DefaultConfigPath returns ~/.config/ocr-translator/config.yaml.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "ocr-translator", "config.yaml")
}

// ConfigPath returns the file this config was loaded from, or the default path.
func (c *Config) ConfigPath() string {
	if c.path != "" {
		return c.path
	}
	return DefaultConfigPath()
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return config.DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warn("Config: %v, using info", err)
	}
	return level
}

// Validate checks that the endpoint is an absolute http(s) URL and the timeout is not negative.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: must be an http or https URL", c.Endpoint)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("invalid request timeout %d: must not be negative", c.RequestTimeoutSeconds)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigPath())
}

// LoadConfigFrom reads a YAML config file and applies OCRT_* environment overrides.
// A missing file yields the defaults (plus overrides).
func LoadConfigFrom(path string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("endpoint", defaults.Endpoint)
	v.SetDefault("request_timeout_seconds", defaults.RequestTimeoutSeconds)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("server_addr", defaults.ServerAddr)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.path = path

	return cfg, nil
}

func (c *Config) Save() error {
	configPath := c.ConfigPath()

	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
