package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Endpoint, model, and tuning defaults follow the NASA APOD and Groq
// public API documentation.
const (
	// DefaultAPODEndpoint is the public NASA APOD API endpoint.
	// The API key and optional date are passed as query parameters.
	DefaultAPODEndpoint = "https://api.nasa.gov/planetary/apod"

	// DefaultGroqEndpoint is the Groq OpenAI-compatible chat
	// completions endpoint.
	DefaultGroqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

	// DefaultModel is the completion model used for simplification.
	// llama-3.1-8b-instant is fast and cheap, which suits a prompt
	// that asks for under 100 words of output.
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTemperature balances readable variety against drifting
	// away from the source explanation's facts.
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the completion length. 200 tokens is
	// comfortably above the ~100-word target, leaving the model room
	// to finish its last sentence.
	DefaultMaxTokens = 200

	// DefaultTimeout is the per-request HTTP timeout. Both APIs
	// normally answer within a few seconds; 10 seconds gives slow
	// completions headroom without hanging the run indefinitely.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxImageSize limits the image download size. APOD HD
	// images occasionally exceed 10MB; 20MB covers them while still
	// bounding memory use.
	DefaultMaxImageSize = 20 * 1024 * 1024 // 20MB

	// DefaultOutputDir is the directory reports and images are
	// written to, relative to the working directory.
	DefaultOutputDir = "screenshots"

	// AppName is the application name used for XDG directory paths.
	AppName = "apodex"

	// EnvNASAKey is the environment variable holding the NASA API key.
	EnvNASAKey = "NASA_KEY"

	// EnvGroqKey is the environment variable holding the Groq API key.
	EnvGroqKey = "GROQ_API_KEY"
)

// Config holds all configuration options for one apodex run.
// It is populated from CLI flags, the optional config file, and the
// environment, then passed through the application by value reference
// rather than global state.
//
// Design decision: A single flat struct instead of nested sub-structs.
// The option count is small and flat fields keep flag wiring obvious.
type Config struct {
	// NASAAPIKey authenticates against the APOD API.
	// Read from the NASA_KEY environment variable.
	NASAAPIKey string

	// GroqAPIKey authenticates against the completion API.
	// Read from the GROQ_API_KEY environment variable.
	GroqAPIKey string

	// APODEndpoint is the APOD API URL. Overridable for testing.
	APODEndpoint string

	// GroqEndpoint is the completion API URL. Overridable for testing.
	GroqEndpoint string

	// Date is the requested APOD date in YYYY-MM-DD format.
	// Empty means today (the API's default when the parameter is
	// omitted).
	Date string

	// Model is the completion model name.
	Model string

	// Temperature is the completion sampling temperature.
	Temperature float64

	// MaxTokens caps the completion length in tokens.
	MaxTokens int

	// Timeout is the per-request HTTP timeout for both APIs.
	Timeout time.Duration

	// MaxImageSize is the maximum image download size in bytes.
	MaxImageSize int64

	// OutputDir is the directory for the report and image files.
	// Created if it does not exist.
	OutputDir string

	// SkipImage disables the image download; reports reference the
	// remote URL instead.
	SkipImage bool

	// JSONReport selects JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ConfigFilePath is an explicit config file path. Empty means
	// search the standard locations.
	ConfigFilePath string

	// Verbose enables debug-level logging.
	Verbose bool
}

// NewConfig creates a Config with default values. Credentials are not
// read here; call LoadCredentials after any .env loading has happened.
//
// Design decision: A constructor rather than zero values because most
// defaults are non-zero, and the constructor documents them.
func NewConfig() *Config {
	return &Config{
		APODEndpoint: DefaultAPODEndpoint,
		GroqEndpoint: DefaultGroqEndpoint,
		Model:        DefaultModel,
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
		Timeout:      DefaultTimeout,
		MaxImageSize: DefaultMaxImageSize,
		OutputDir:    DefaultOutputDir,
	}
}

// LoadCredentials reads the API keys from the environment.
// Call Validate afterwards to turn missing keys into errors.
func (c *Config) LoadCredentials() {
	c.NASAAPIKey = strings.TrimSpace(os.Getenv(EnvNASAKey))
	c.GroqAPIKey = strings.TrimSpace(os.Getenv(EnvGroqKey))
}

// XDGConfigDir returns the XDG config directory for apodex.
// On Linux: ~/.config/apodex
// On macOS: ~/Library/Application Support/apodex
// On Windows: %APPDATA%\apodex
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks that the configuration is usable and returns a
// specific error describing the first problem found.
//
// Design decision: Validation happens once, after flag and file
// loading and before any client is constructed. Missing credentials
// in particular must fail here so no network request is ever attempted
// with an empty key.
func (c *Config) Validate() error {
	if c.NASAAPIKey == "" {
		return ErrMissingNASAKey
	}

	if c.GroqAPIKey == "" {
		return ErrMissingGroqKey
	}

	if c.Date != "" {
		if _, err := time.Parse("2006-01-02", c.Date); err != nil {
			return ErrInvalidDate
		}
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxTokens <= 0 {
		return ErrInvalidMaxTokens
	}

	if c.MaxImageSize < 0 {
		return ErrInvalidMaxImageSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
