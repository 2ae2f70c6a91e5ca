package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/apodex/internal/imagemeta"
	"github.com/nao1215/apodex/internal/model"
	"github.com/nao1215/apodex/internal/nasa"
	"github.com/nao1215/apodex/internal/simplify"
)

// FetchStep retrieves the APOD record for the configured date.
// This must be the first step: every later step reads the record.
type FetchStep struct {
	// client is the APOD API client.
	client *nasa.Client

	// date is the requested APOD date; empty means today.
	date string

	// logger for structured logging.
	logger *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		s.logger = logger
	}
}

// NewFetchStep creates the APOD fetch step.
func NewFetchStep(client *nasa.Client, date string, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		client: client,
		date:   date,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch_apod"
}

// Do fetches the APOD record and stores it on the report.
func (s *FetchStep) Do(ctx context.Context, report *model.Report) error {
	apod, err := s.client.Fetch(ctx, s.date)
	if err != nil {
		return fmt.Errorf("failed to fetch APOD record: %w", err)
	}

	s.logger.Info("APOD record fetched",
		"date", apod.Date,
		"title", apod.Title,
		"mediaType", apod.MediaType,
		"explanationWords", apod.ExplanationWordCount(),
	)

	report.Apod = apod
	return nil
}

// ImageStep downloads the record's image and extracts EXIF metadata.
// Video records and --no-image runs record the remote URL only.
type ImageStep struct {
	// client is the APOD API client, reused for the image download.
	client *nasa.Client

	// skip disables the download entirely.
	skip bool

	// logger for structured logging.
	logger *slog.Logger
}

// ImageStepOption configures an ImageStep.
type ImageStepOption func(*ImageStep)

// WithImageSkip disables the image download.
func WithImageSkip(skip bool) ImageStepOption {
	return func(s *ImageStep) {
		s.skip = skip
	}
}

// WithImageLogger sets a custom logger for the image step.
func WithImageLogger(logger *slog.Logger) ImageStepOption {
	return func(s *ImageStep) {
		s.logger = logger
	}
}

// NewImageStep creates the image download step.
func NewImageStep(client *nasa.Client, opts ...ImageStepOption) *ImageStep {
	s := &ImageStep{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ImageStep) Name() string {
	return "fetch_image"
}

// Do downloads the image unless the record is a video or the download
// is disabled. Either way the report gets an ImageAsset referencing
// the remote URL, so writers always have something to link.
func (s *ImageStep) Do(ctx context.Context, report *model.Report) error {
	apod := report.Apod
	if apod == nil {
		return fmt.Errorf("image step requires a fetched APOD record")
	}

	asset := &model.ImageAsset{URL: apod.ImageURL()}
	report.Image = asset

	if apod.IsVideo() {
		s.logger.Info("record is a video; skipping image download", "url", apod.URL)
		return nil
	}
	if s.skip {
		s.logger.Info("image download disabled; report will reference the URL")
		return nil
	}

	data, contentType, err := s.client.FetchImage(ctx, asset.URL)
	if err != nil {
		return fmt.Errorf("failed to download APOD image: %w", err)
	}

	asset.Data = data
	asset.ContentType = contentType
	asset.Metadata = imagemeta.Extract(data)

	s.logger.Info("image downloaded",
		"bytes", len(data),
		"contentType", contentType,
		"hasExif", !asset.Metadata.IsEmpty(),
	)

	return nil
}

// SimplifyStep rewrites the explanation through the completion API.
// It depends on FetchStep's output and therefore runs after it.
type SimplifyStep struct {
	// simplifier wraps the completion client and prompt template.
	simplifier *simplify.Simplifier

	// logger for structured logging.
	logger *slog.Logger
}

// SimplifyStepOption configures a SimplifyStep.
type SimplifyStepOption func(*SimplifyStep)

// WithSimplifyLogger sets a custom logger for the simplify step.
func WithSimplifyLogger(logger *slog.Logger) SimplifyStepOption {
	return func(s *SimplifyStep) {
		s.logger = logger
	}
}

// NewSimplifyStep creates the simplification step.
func NewSimplifyStep(simplifier *simplify.Simplifier, opts ...SimplifyStepOption) *SimplifyStep {
	s := &SimplifyStep{
		simplifier: simplifier,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *SimplifyStep) Name() string {
	return "simplify"
}

// Do simplifies the fetched explanation and stores the result.
func (s *SimplifyStep) Do(ctx context.Context, report *model.Report) error {
	apod := report.Apod
	if apod == nil {
		return fmt.Errorf("simplify step requires a fetched APOD record")
	}

	simplified, err := s.simplifier.Simplify(ctx, apod.Explanation)
	if err != nil {
		return fmt.Errorf("failed to simplify explanation: %w", err)
	}

	s.logger.Info("explanation simplified",
		"model", simplified.Model,
		"words", simplified.Words,
	)

	report.Simplified = simplified
	return nil
}
