// Package http provides HTTP client utilities with connection pooling.
package http

import (
	"net/http"
	"time"

	"ocr-translator/internal/config"
)

// ClientConfig configures the HTTP client behavior.
type ClientConfig struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}

// DefaultClientConfig returns the default HTTP client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:             config.HTTPTimeout,
		MaxIdleConns:        config.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: config.HTTPMaxIdleConnsPerHost,
		IdleConnTimeout:     config.HTTPIdleConnTimeout,
	}
}

// WithTimeout returns a copy of cfg using the given request timeout.
// Non-positive values keep the existing timeout.
func (cfg ClientConfig) WithTimeout(timeout time.Duration) ClientConfig {
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return cfg
}

// NewPooledClient creates an HTTP client with connection pooling.
// This should be reused across requests to the same host for efficiency.
func NewPooledClient(cfg ClientConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		},
	}
}

// NewDefaultClient creates an HTTP client with default pooling settings.
func NewDefaultClient() *http.Client {
	return NewPooledClient(DefaultClientConfig())
}

// ProcessorClient is the shared HTTP client for the processing endpoint.
var ProcessorClient = NewDefaultClient()
