package nasa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// apodJSON is a realistic APOD response body for tests.
const apodJSON = `{
	"date": "2024-12-10",
	"title": "Example Nebula",
	"explanation": "A nebula is an interstellar cloud of dust, hydrogen, helium and other ionized gases.",
	"url": "https://apod.nasa.gov/apod/image/2412/example.jpg",
	"hdurl": "https://apod.nasa.gov/apod/image/2412/example_hd.jpg",
	"media_type": "image",
	"copyright": "Example Observatory"
}`

// TestClientFetch tests APOD record fetching.
func TestClientFetch(t *testing.T) {
	t.Parallel()

	t.Run("returns record with explanation intact", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("api_key"); got != "test-key" {
				t.Errorf("expected api_key query parameter, got %q", got)
			}
			if got := r.URL.Query().Get("date"); got != "2024-12-10" {
				t.Errorf("expected date query parameter, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(apodJSON))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		apod, err := client.Fetch(context.Background(), "2024-12-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if apod.Title != "Example Nebula" {
			t.Errorf("unexpected title %q", apod.Title)
		}
		want := "A nebula is an interstellar cloud of dust, hydrogen, helium and other ionized gases."
		if apod.Explanation != want {
			t.Errorf("explanation does not match source field: %q", apod.Explanation)
		}
		if apod.HDURL != "https://apod.nasa.gov/apod/image/2412/example_hd.jpg" {
			t.Errorf("unexpected hdurl %q", apod.HDURL)
		}
	})

	t.Run("omits date parameter when empty", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("date") {
				t.Error("expected no date query parameter for today's record")
			}
			_, _ = w.Write([]byte(apodJSON))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Fetch(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing explanation returns ErrMissingExplanation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"date":"2024-12-10","title":"Example Nebula","url":"https://example.com/x.jpg","media_type":"image"}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		apod, err := client.Fetch(context.Background(), "")
		if !errors.Is(err, ErrMissingExplanation) {
			t.Errorf("expected ErrMissingExplanation, got %v", err)
		}
		if apod != nil {
			t.Error("expected no record to be returned alongside the error")
		}
	})

	t.Run("blank explanation returns ErrMissingExplanation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"title":"Example Nebula","explanation":"   ","media_type":"image"}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Fetch(context.Background(), ""); !errors.Is(err, ErrMissingExplanation) {
			t.Errorf("expected ErrMissingExplanation, got %v", err)
		}
	})

	t.Run("non-200 status returns ErrUnexpectedStatus", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := NewClient("bad-key", WithEndpoint(srv.URL))
		_, err := client.Fetch(context.Background(), "")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), "403") {
			t.Errorf("expected error message to name the status code, got %v", err)
		}
	})

	t.Run("malformed JSON returns an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Fetch(context.Background(), ""); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("unreachable endpoint returns an error", func(t *testing.T) {
		t.Parallel()

		// Closed server: connection refused.
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close()

		client := NewClient("test-key", WithEndpoint(srv.URL))
		if _, err := client.Fetch(context.Background(), ""); err == nil {
			t.Error("expected error for unreachable endpoint")
		}
	})
}

// TestClientFetchImage tests image downloading.
func TestClientFetchImage(t *testing.T) {
	t.Parallel()

	t.Run("returns bytes and content type", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		client := NewClient("test-key")
		data, contentType, err := client.FetchImage(context.Background(), srv.URL+"/example.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != len(payload) {
			t.Errorf("expected %d bytes, got %d", len(payload), len(data))
		}
		if contentType != "image/jpeg" {
			t.Errorf("unexpected content type %q", contentType)
		}
	})

	t.Run("oversized image returns ErrImageTooLarge", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(make([]byte, 64))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithMaxImageSize(16))
		if _, _, err := client.FetchImage(context.Background(), srv.URL); !errors.Is(err, ErrImageTooLarge) {
			t.Errorf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("non-200 status returns ErrUnexpectedStatus", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("test-key")
		if _, _, err := client.FetchImage(context.Background(), srv.URL); !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
	})
}
