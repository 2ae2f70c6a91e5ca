package model

import "testing"

// TestApodIsVideo tests media type detection.
func TestApodIsVideo(t *testing.T) {
	t.Parallel()

	t.Run("image record is not video", func(t *testing.T) {
		t.Parallel()
		a := &Apod{MediaType: MediaTypeImage}
		if a.IsVideo() {
			t.Error("expected IsVideo to be false for image record")
		}
	})

	t.Run("video record is video", func(t *testing.T) {
		t.Parallel()
		a := &Apod{MediaType: MediaTypeVideo}
		if !a.IsVideo() {
			t.Error("expected IsVideo to be true for video record")
		}
	})
}

// TestApodImageURL tests HD URL preference.
func TestApodImageURL(t *testing.T) {
	t.Parallel()

	t.Run("prefers HD URL when present", func(t *testing.T) {
		t.Parallel()
		a := &Apod{
			URL:   "https://example.com/std.jpg",
			HDURL: "https://example.com/hd.jpg",
		}
		if got := a.ImageURL(); got != "https://example.com/hd.jpg" {
			t.Errorf("expected HD URL, got %q", got)
		}
	})

	t.Run("falls back to standard URL", func(t *testing.T) {
		t.Parallel()
		a := &Apod{URL: "https://example.com/std.jpg"}
		if got := a.ImageURL(); got != "https://example.com/std.jpg" {
			t.Errorf("expected standard URL, got %q", got)
		}
	})
}

// TestApodHasExplanation tests blank explanation detection.
func TestApodHasExplanation(t *testing.T) {
	t.Parallel()

	t.Run("non-empty explanation", func(t *testing.T) {
		t.Parallel()
		a := &Apod{Explanation: "A nebula is a cloud of gas."}
		if !a.HasExplanation() {
			t.Error("expected HasExplanation to be true")
		}
	})

	t.Run("empty explanation", func(t *testing.T) {
		t.Parallel()
		a := &Apod{}
		if a.HasExplanation() {
			t.Error("expected HasExplanation to be false")
		}
	})

	t.Run("whitespace-only explanation", func(t *testing.T) {
		t.Parallel()
		a := &Apod{Explanation: "  \n\t "}
		if a.HasExplanation() {
			t.Error("expected HasExplanation to be false for whitespace")
		}
	})
}

// TestApodExplanationWordCount tests word counting.
func TestApodExplanationWordCount(t *testing.T) {
	t.Parallel()

	a := &Apod{Explanation: "Stars form in  collapsing clouds."}
	if got := a.ExplanationWordCount(); got != 5 {
		t.Errorf("expected 5 words, got %d", got)
	}
}
