package model

import "strings"

// Media types returned by the APOD API in the media_type field.
const (
	// MediaTypeImage indicates the record points at a still image.
	MediaTypeImage = "image"

	// MediaTypeVideo indicates the record points at a hosted video
	// (typically YouTube or Vimeo). Video records have no image bytes
	// to download; reports reference the URL instead.
	MediaTypeVideo = "video"
)

// Apod is one Astronomy Picture of the Day record as returned by the
// NASA APOD API. The field set mirrors the documented JSON response.
//
// An Apod is immutable once parsed: the fetcher creates it and every
// later stage only reads from it.
type Apod struct {
	// Date is the picture date in YYYY-MM-DD format.
	Date string `json:"date"`

	// Title is the human-readable title of the picture.
	Title string `json:"title"`

	// Explanation is the technical description written by NASA's
	// astronomers. This is the text the simplifier transforms.
	Explanation string `json:"explanation"`

	// URL is the standard-resolution media URL.
	URL string `json:"url"`

	// HDURL is the high-resolution image URL. Empty for videos and
	// for some older records.
	HDURL string `json:"hdurl,omitempty"`

	// MediaType is "image" or "video".
	MediaType string `json:"media_type"`

	// Copyright is the image credit. Empty for public-domain images.
	Copyright string `json:"copyright,omitempty"`

	// ThumbnailURL is a video thumbnail, present only when the API was
	// asked for thumbnails on a video record.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// IsVideo reports whether the record points at a video rather than a
// downloadable image.
func (a *Apod) IsVideo() bool {
	return a.MediaType == MediaTypeVideo
}

// ImageURL returns the best URL for downloading the image.
// It prefers the HD variant when present and falls back to the
// standard-resolution URL.
func (a *Apod) ImageURL() string {
	if a.HDURL != "" {
		return a.HDURL
	}
	return a.URL
}

// HasExplanation reports whether the record carries a non-blank
// explanation. The fetcher rejects records where this is false, so
// downstream code can rely on the explanation being present.
func (a *Apod) HasExplanation() bool {
	return strings.TrimSpace(a.Explanation) != ""
}

// ExplanationWordCount returns the number of whitespace-separated
// words in the explanation. Used for logging and report summaries.
func (a *Apod) ExplanationWordCount() int {
	return len(strings.Fields(a.Explanation))
}
