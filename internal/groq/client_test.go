package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// completionResponse builds a chat completions response body with the
// given content.
func completionResponse(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// TestClientComplete tests completion requests.
func TestClientComplete(t *testing.T) {
	t.Parallel()

	t.Run("returns completion text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("expected Bearer auth header, got %q", got)
			}
			var req chatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			if req.Model != "llama-3.1-8b-instant" {
				t.Errorf("unexpected model %q", req.Model)
			}
			if req.MaxTokens != 200 {
				t.Errorf("unexpected max_tokens %d", req.MaxTokens)
			}
			if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
				t.Errorf("expected one user message, got %+v", req.Messages)
			}
			_, _ = w.Write([]byte(completionResponse("  Think of a nebula as cosmic fog. ")))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		text, err := client.Complete(context.Background(), "explain this")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Think of a nebula as cosmic fog." {
			t.Errorf("expected trimmed completion text, got %q", text)
		}
	})

	t.Run("401 returns ErrUnauthorized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		client := NewClient("bad-key", WithEndpoint(srv.URL))
		_, err := client.Complete(context.Background(), "explain this")
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), "GROQ_API_KEY") {
			t.Errorf("expected error message to name the environment variable, got %v", err)
		}
	})

	t.Run("403 returns ErrUnauthorized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := NewClient("bad-key", WithEndpoint(srv.URL))
		if _, err := client.Complete(context.Background(), "x"); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("empty choices returns ErrEmptyCompletion", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Complete(context.Background(), "x"); !errors.Is(err, ErrEmptyCompletion) {
			t.Errorf("expected ErrEmptyCompletion, got %v", err)
		}
	})

	t.Run("whitespace-only completion returns ErrEmptyCompletion", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(completionResponse("   \n")))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Complete(context.Background(), "x"); !errors.Is(err, ErrEmptyCompletion) {
			t.Errorf("expected ErrEmptyCompletion, got %v", err)
		}
	})

	t.Run("500 includes API error message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"model is overloaded","type":"server_error"}}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		_, err := client.Complete(context.Background(), "x")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), "model is overloaded") {
			t.Errorf("expected API error message in error, got %v", err)
		}
	})

	t.Run("unreachable endpoint returns an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Complete(context.Background(), "x"); err == nil {
			t.Error("expected error for unreachable endpoint")
		}
	})
}

// TestClientOptions tests constructor options.
func TestClientOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		client := NewClient("k")
		if client.model != "llama-3.1-8b-instant" {
			t.Errorf("unexpected default model %q", client.model)
		}
		if client.temperature != 0.7 {
			t.Errorf("unexpected default temperature %v", client.temperature)
		}
		if client.maxTokens != 200 {
			t.Errorf("unexpected default maxTokens %d", client.maxTokens)
		}
	})

	t.Run("applies overrides", func(t *testing.T) {
		t.Parallel()

		client := NewClient("k",
			WithModel("llama-3.3-70b-versatile"),
			WithTemperature(0.2),
			WithMaxTokens(400),
		)
		if client.Model() != "llama-3.3-70b-versatile" {
			t.Errorf("unexpected model %q", client.Model())
		}
		if client.temperature != 0.2 {
			t.Errorf("unexpected temperature %v", client.temperature)
		}
		if client.maxTokens != 400 {
			t.Errorf("unexpected maxTokens %d", client.maxTokens)
		}
	})
}
