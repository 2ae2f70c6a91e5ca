package model

import (
	"strings"
	"time"
)

// SimplifiedExplanation is the beginner-friendly rewrite of an APOD
// explanation produced by the completion API.
//
// The "under 100 words" target is a prompt-level contract only: the
// model is asked to stay below it but nothing in apodex enforces or
// truncates. Words is informational.
type SimplifiedExplanation struct {
	// Text is the simplified explanation as returned by the model.
	Text string `json:"text"`

	// Model is the completion model that produced the text.
	Model string `json:"model"`

	// Words is the whitespace-separated word count of Text.
	Words int `json:"words"`
}

// NewSimplifiedExplanation creates a SimplifiedExplanation from raw
// completion output, trimming surrounding whitespace and recording the
// word count.
func NewSimplifiedExplanation(text, model string) *SimplifiedExplanation {
	trimmed := strings.TrimSpace(text)
	return &SimplifiedExplanation{
		Text:  trimmed,
		Model: model,
		Words: len(strings.Fields(trimmed)),
	}
}

// ImageMetadata holds EXIF-derived metadata extracted from the
// downloaded APOD image. Astrophotography images frequently carry
// camera and credit information worth surfacing in the report.
// All fields are optional; absent tags leave empty strings.
type ImageMetadata struct {
	// CameraMake is the camera manufacturer (EXIF Make).
	CameraMake string `json:"camera_make,omitempty"`

	// CameraModel is the camera model (EXIF Model).
	CameraModel string `json:"camera_model,omitempty"`

	// Software is the processing software (EXIF Software).
	Software string `json:"software,omitempty"`

	// CaptureTime is the original capture timestamp (EXIF
	// DateTimeOriginal), verbatim as stored in the image.
	CaptureTime string `json:"capture_time,omitempty"`

	// Artist is the photographer credit (EXIF Artist).
	Artist string `json:"artist,omitempty"`

	// Copyright is the embedded copyright notice (EXIF Copyright).
	Copyright string `json:"copyright,omitempty"`
}

// IsEmpty reports whether no metadata fields were extracted.
func (m *ImageMetadata) IsEmpty() bool {
	return m == nil || (m.CameraMake == "" && m.CameraModel == "" &&
		m.Software == "" && m.CaptureTime == "" && m.Artist == "" && m.Copyright == "")
}

// ImageAsset is the downloaded APOD image together with anything
// extracted from it. Data is nil when the image was not downloaded
// (video records, --no-image, or download skipped by configuration).
type ImageAsset struct {
	// URL is the remote location the image was (or would be)
	// downloaded from.
	URL string `json:"url"`

	// ContentType is the Content-Type reported by the server.
	ContentType string `json:"content_type,omitempty"`

	// Data holds the raw image bytes. Excluded from JSON reports to
	// keep them readable; the image is persisted as its own file.
	Data []byte `json:"-"`

	// LocalPath is the path the image was saved to, relative to the
	// report file. Empty when the image was not persisted.
	LocalPath string `json:"local_path,omitempty"`

	// Metadata is EXIF metadata extracted from Data, if any.
	Metadata *ImageMetadata `json:"metadata,omitempty"`
}

// Downloaded reports whether image bytes are present.
func (i *ImageAsset) Downloaded() bool {
	return i != nil && len(i.Data) > 0
}

// Report is the single artifact produced by one apodex run.
// Pipeline steps fill it in sequence: the fetch step sets Apod, the
// image step sets Image, and the simplify step sets Simplified.
//
// Design decision: One struct accumulates everything, mirroring how
// a run's output is ultimately one file. Steps never remove or rewrite
// what earlier steps recorded.
type Report struct {
	// Apod is the fetched picture-of-the-day record.
	Apod *Apod `json:"apod"`

	// Simplified is the beginner-friendly explanation.
	Simplified *SimplifiedExplanation `json:"simplified"`

	// Image is the downloaded image asset, nil until the image step
	// runs and nil forever for video records.
	Image *ImageAsset `json:"image,omitempty"`

	// GeneratedAt is when the run produced this report.
	GeneratedAt time.Time `json:"generated_at"`

	// PerformedSteps lists pipeline step names in execution order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the terminal error of a failed run. Not serialized;
	// ErrorMessage carries the text into reports.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewReport creates an empty Report stamped with the current time.
func NewReport() *Report {
	return &Report{
		GeneratedAt: time.Now(),
	}
}

// Complete reports whether both transformation stages produced output.
func (r *Report) Complete() bool {
	return r.Apod != nil && r.Simplified != nil
}
