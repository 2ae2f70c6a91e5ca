package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/apodex/internal/config"
	"github.com/nao1215/apodex/internal/model"
)

// Client fetches APOD records and images from the NASA API.
//
// Design decision: A struct holding the http.Client rather than
// passing one per call because:
//  1. Timeout configuration should be consistent across calls
//  2. Connection reuse works better with a shared client
//  3. Tests swap the endpoint for an httptest server
type Client struct {
	// httpClient performs the requests. Its timeout bounds each call.
	httpClient *http.Client

	// endpoint is the APOD API URL.
	endpoint string

	// apiKey is sent as the api_key query parameter.
	apiKey string

	// maxImageSize caps image downloads to bound memory use.
	maxImageSize int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
// Used by tests and by callers that need transport control.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithEndpoint overrides the APOD API URL.
func WithEndpoint(endpoint string) Option {
	return func(cl *Client) {
		cl.endpoint = endpoint
	}
}

// WithTimeout sets the per-request timeout on the client's HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = timeout
	}
}

// WithMaxImageSize sets the maximum image download size.
func WithMaxImageSize(size int64) Option {
	return func(cl *Client) {
		cl.maxImageSize = size
	}
}

// NewClient creates an APOD client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: config.DefaultTimeout},
		endpoint:     config.DefaultAPODEndpoint,
		apiKey:       apiKey,
		maxImageSize: config.DefaultMaxImageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves the APOD record for the given date.
// An empty date means today; otherwise the date must be YYYY-MM-DD
// (validated by config before the client is built).
//
// It returns ErrUnexpectedStatus for non-200 responses and
// ErrMissingExplanation when the record has no explanation text.
func (c *Client) Fetch(ctx context.Context, date string) (*model.Apod, error) {
	reqURL, err := c.buildURL(date)
	if err != nil {
		return nil, fmt.Errorf("failed to build APOD request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create APOD request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach APOD API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus,
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var apod model.Apod
	if err := json.NewDecoder(resp.Body).Decode(&apod); err != nil {
		return nil, fmt.Errorf("failed to decode APOD response: %w", err)
	}

	// Guard against records with a blank explanation. Passing one
	// downstream would put an empty body in the final report.
	if !apod.HasExplanation() {
		return nil, ErrMissingExplanation
	}

	return &apod, nil
}

// FetchImage downloads the image at the given URL.
// It returns the image bytes and the Content-Type reported by the
// server. Downloads larger than the configured limit fail with
// ErrImageTooLarge rather than being silently truncated.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: %d %s", ErrUnexpectedStatus,
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if resp.ContentLength > c.maxImageSize {
		return nil, "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, resp.ContentLength)
	}

	// Read one byte past the limit so oversized bodies without a
	// Content-Length header are detected instead of truncated.
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image body: %w", err)
	}
	if int64(len(data)) > c.maxImageSize {
		return nil, "", fmt.Errorf("%w: over %d bytes", ErrImageTooLarge, c.maxImageSize)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// buildURL assembles the APOD request URL with query parameters.
func (c *Client) buildURL(date string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	if date != "" {
		q.Set("date", date)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
