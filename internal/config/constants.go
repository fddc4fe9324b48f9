// Package config provides centralized configuration and constants for the ocr-translator application.
package config

import "time"

// Processing endpoint defaults
const (
	DefaultEndpoint       = "http://localhost:5000/process"
	DefaultRequestTimeout = 2 * time.Minute
	DefaultLogLevel       = "info"
)

// HTTP client settings
const (
	HTTPTimeout             = DefaultRequestTimeout
	HTTPMaxIdleConns        = 10
	HTTPMaxIdleConnsPerHost = 10
	HTTPIdleConnTimeout     = 90 * time.Second
)

// Multipart form field names understood by the processing endpoint
const (
	FieldText       = "text"
	FieldFile       = "file"
	FieldOption     = "option"
	FieldSourceLang = "source_lang"
	FieldTargetLang = "target_lang"
)

// PastedImageName is the filename sent for a pasted or dropped image.
const PastedImageName = "pasted-image.png"

// Default languages
const (
	AutoDetectLang    = "auto"
	DefaultSourceLang = AutoDetectLang
	DefaultTargetLang = "en"
)

// User-facing messages
const (
	MessageNoInput      = "Please provide text, a file, or paste an image"
	MessageGenericError = "An error occurred"
)

// CopyFeedbackDuration is how long the result modal shows "Copied!" after a copy.
const CopyFeedbackDuration = 2000 * time.Millisecond

// Limits
const (
	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 10 * 1024 * 1024

	// MaxUploadBytes caps chosen files and the multipart body accepted by the dev server.
	MaxUploadBytes = 32 << 20

	// LogPreviewLength is how many runes of user text end up in log lines.
	LogPreviewLength = 50
)

// Dev processing server
const (
	DefaultServerAddr = ":5000"
	ProcessPath       = "/process"
	HealthPath        = "/healthz"
	RequestIDHeader   = "X-Request-ID"
)

// Window
const (
	WindowTitle  = "Text & File Processor"
	WindowWidth  = 560
	WindowHeight = 720
)
