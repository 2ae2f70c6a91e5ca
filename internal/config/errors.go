package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate and surface before any network
// call is attempted.
//
// Design decision: Package-level sentinel errors rather than error
// values created inside Validate. Callers match them with errors.Is
// while users still get a readable message, and the credential errors
// name the exact environment variable to set.
var (
	// ErrMissingNASAKey is returned when the NASA API key is absent.
	// The run stops before contacting either API.
	ErrMissingNASAKey = errors.New("missing NASA API key: set the NASA_KEY environment variable (or add it to .env)")

	// ErrMissingGroqKey is returned when the Groq API key is absent.
	// The run stops before contacting either API.
	ErrMissingGroqKey = errors.New("missing Groq API key: set the GROQ_API_KEY environment variable (or add it to .env)")

	// ErrInvalidDate is returned when --date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date: must be in YYYY-MM-DD format")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxTokens is returned when the completion token cap is
	// not positive. Zero tokens would make every completion empty.
	ErrInvalidMaxTokens = errors.New("invalid max tokens: must be positive")

	// ErrInvalidMaxImageSize is returned when the image size cap is
	// negative. Use 0 to fall back to the default limit.
	ErrInvalidMaxImageSize = errors.New("invalid max image size: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one format per run.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
