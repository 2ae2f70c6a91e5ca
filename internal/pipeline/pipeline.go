package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/apodex/internal/model"
)

// Step defines the interface that all pipeline steps implement.
// Steps run in sequence; each receives the report accumulated by the
// steps before it.
//
// Design decision: An interface rather than function types because
// steps carry configuration state (clients, flags) and a Name() method
// keeps logging uniform.
type Step interface {
	// Do executes the step, reading from and writing to the report.
	// A returned error stops the pipeline.
	Do(ctx context.Context, report *model.Report) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline executes steps in order.
type Pipeline struct {
	// steps is the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given steps.
func New(steps []Step, opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: steps,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Execute runs all steps in sequence, stopping on the first error.
// Context cancellation is checked before each step; steps handle
// their own request timeouts.
//
// The failed step's error is recorded on the report before returning
// so a partially-built report still explains what went wrong.
func (p *Pipeline) Execute(ctx context.Context, report *model.Report) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			report.Error = ctx.Err()
			report.ErrorMessage = ctx.Err().Error()
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step", "step", step.Name())

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			report.Error = err
			report.ErrorMessage = err.Error()
			return err
		}

		p.logger.Debug("step completed", "step", step.Name())
		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}

	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
