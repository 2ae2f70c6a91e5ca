package simplify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/apodex/internal/model"
)

// promptTemplate is the fixed instruction wrapped around the source
// explanation. The word-count ceiling and the analogy directive are
// enforced only by this wording; the output is used as-is.
const promptTemplate = `Explain this astronomy concept in simple terms for a high school student.
Use plain language and everyday analogies. Keep it under 100 words and make it engaging.

Technical explanation:
%s

Simple explanation:`

// ErrEmptyExplanation is returned when there is no source text to
// simplify. The fetcher should have rejected such records already;
// this is the simplifier's own guard.
var ErrEmptyExplanation = errors.New("no explanation text to simplify")

// Completer is the narrow interface the simplifier needs from a
// completion API client. groq.Client satisfies it.
//
// Design decision: The interface lives here, on the consumer side,
// so tests substitute fakes without importing the groq package.
type Completer interface {
	// Complete submits a prompt and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model name, recorded in the report.
	Model() string
}

// Simplifier produces beginner-friendly explanations.
type Simplifier struct {
	// completer is the completion API client.
	completer Completer

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Simplifier.
type Option func(*Simplifier)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simplifier) {
		s.logger = logger
	}
}

// New creates a Simplifier over the given completer.
func New(completer Completer, opts ...Option) *Simplifier {
	s := &Simplifier{
		completer: completer,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Simplify sends the explanation through the completion API and
// returns the simplified text.
//
// The returned text is whatever the model produced: the 100-word
// target is a soft contract and occasional overshoot is expected.
// The actual word count is logged at debug level for observability.
func (s *Simplifier) Simplify(ctx context.Context, explanation string) (*model.SimplifiedExplanation, error) {
	if strings.TrimSpace(explanation) == "" {
		return nil, ErrEmptyExplanation
	}

	prompt := fmt.Sprintf(promptTemplate, explanation)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("simplification failed: %w", err)
	}

	simplified := model.NewSimplifiedExplanation(text, s.completer.Model())

	s.logger.Debug("explanation simplified",
		"model", simplified.Model,
		"sourceWords", len(strings.Fields(explanation)),
		"simplifiedWords", simplified.Words,
	)
	if simplified.Words > 100 {
		s.logger.Debug("simplified explanation exceeds the 100-word target",
			"words", simplified.Words,
		)
	}

	return simplified, nil
}
