package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nao1215/apodex/internal/config"
)

// chatRequest is the OpenAI-compatible chat completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is one message in a chat completions conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError is the error object returned in non-200 response bodies.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Client submits prompts to the Groq chat completions API.
//
// Design decision: The request body is built with encoding/json
// against the documented schema rather than through a provider SDK.
// No Groq SDK exists, and the OpenAI-compatible schema is three small
// structs; a third-party client for a different provider would change
// the wire protocol this tool actually speaks.
type Client struct {
	// httpClient performs the requests. Its timeout bounds each call.
	httpClient *http.Client

	// endpoint is the chat completions URL.
	endpoint string

	// apiKey is sent as a Bearer token.
	apiKey string

	// model is the completion model name.
	model string

	// temperature is the sampling temperature.
	temperature float64

	// maxTokens caps the completion length.
	maxTokens int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithEndpoint overrides the chat completions URL.
func WithEndpoint(endpoint string) Option {
	return func(cl *Client) {
		cl.endpoint = endpoint
	}
}

// WithModel sets the completion model name.
func WithModel(model string) Option {
	return func(cl *Client) {
		cl.model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(cl *Client) {
		cl.temperature = temperature
	}
}

// WithMaxTokens caps the completion length in tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(cl *Client) {
		cl.maxTokens = maxTokens
	}
}

// WithTimeout sets the per-request timeout on the client's HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = timeout
	}
}

// NewClient creates a Groq client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: config.DefaultTimeout},
		endpoint:    config.DefaultGroqEndpoint,
		apiKey:      apiKey,
		model:       config.DefaultModel,
		temperature: config.DefaultTemperature,
		maxTokens:   config.DefaultMaxTokens,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Model returns the configured completion model name.
func (c *Client) Model() string {
	return c.model
}

// Complete submits the prompt as a single user message and returns the
// first choice's text.
//
// Error classification: 401/403 map to ErrUnauthorized, other non-200
// statuses to ErrUnexpectedStatus (with the API's own error message
// when the body carries one), and a 200 with no text to
// ErrEmptyCompletion.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach completion API: %w", err)
	}
	defer resp.Body.Close()

	// Error bodies are small JSON objects; 64KB is generous.
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decoding below.
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	default:
		if msg := decodeAPIError(respBody); msg != "" {
			return "", fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, msg)
		}
		return "", fmt.Errorf("%w: %d %s", ErrUnexpectedStatus,
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(chat.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// decodeAPIError extracts the API's error message from a response
// body, returning empty string when there is none.
func decodeAPIError(body []byte) string {
	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return ""
	}
	if chat.Error == nil {
		return ""
	}
	return chat.Error.Message
}
