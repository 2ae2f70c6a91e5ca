package groq

import "errors"

// Completion errors returned by the Groq client.
var (
	// ErrUnauthorized is returned on HTTP 401/403 responses.
	// The message names the environment variable because an invalid or
	// missing key was the most common failure during development and a
	// generic HTTP error sends users down the wrong path.
	ErrUnauthorized = errors.New("completion API rejected the API key: check GROQ_API_KEY")

	// ErrEmptyCompletion is returned when the API answers 200 but the
	// response carries no usable text. An empty simplified explanation
	// must never end up in a report looking like a success.
	ErrEmptyCompletion = errors.New("completion API returned an empty completion")

	// ErrUnexpectedStatus is returned for other non-200 responses.
	// The wrapped message includes the status code and any API error
	// message from the body.
	ErrUnexpectedStatus = errors.New("completion API returned unexpected status")
)
