package report

import (
	"io"

	"github.com/nao1215/apodex/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a Report in a specific format.
//
// Design decision: An interface so the same run can write to a file,
// stdout, or both without the caller knowing the format.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes the same report through multiple Writers.
// Used to show the report on the terminal while also persisting it.
//
// Design decision: A separate type rather than io.MultiWriter because
// our Writer renders reports, not raw bytes, and each destination may
// use a different format.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
