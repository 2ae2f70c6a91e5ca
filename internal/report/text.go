package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/apodex/internal/model"
)

// TextWriter outputs human-readable plain text reports.
// The section layout follows the tool's original output file: header,
// record metadata, original explanation, simplified version.
//
// Design decision: Plain ASCII section rules rather than ANSI color
// because the same bytes go to the terminal and to the saved report
// file.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in plain text format.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeRecord(&sb, report)
	w.writeOriginal(&sb, report)
	w.writeSimplified(&sb, report)
	w.writeMetadata(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                  ASTRONOMY PICTURE OF THE DAY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:    ERROR - %s\n", report.ErrorMessage))
	}
	sb.WriteString("\n")
}

// writeRecord writes the APOD record metadata.
func (w *TextWriter) writeRecord(sb *strings.Builder, report *model.Report) {
	apod := report.Apod
	if apod == nil {
		return
	}

	sb.WriteString(fmt.Sprintf("Date:      %s\n", apod.Date))
	sb.WriteString(fmt.Sprintf("Title:     %s\n", apod.Title))
	sb.WriteString(fmt.Sprintf("Image URL: %s\n", apod.ImageURL()))
	if apod.Copyright != "" {
		sb.WriteString(fmt.Sprintf("Credit:    %s\n", apod.Copyright))
	}
	if report.Image != nil && report.Image.LocalPath != "" {
		sb.WriteString(fmt.Sprintf("Saved as:  %s\n", report.Image.LocalPath))
	}
	sb.WriteString("\n")
}

// writeOriginal writes the original NASA explanation.
func (w *TextWriter) writeOriginal(sb *strings.Builder, report *model.Report) {
	if report.Apod == nil {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ORIGINAL EXPLANATION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
	sb.WriteString(report.Apod.Explanation)
	sb.WriteString("\n\n")
}

// writeSimplified writes the simplified explanation.
func (w *TextWriter) writeSimplified(sb *strings.Builder, report *model.Report) {
	if report.Simplified == nil {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SIMPLIFIED VERSION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
	sb.WriteString(report.Simplified.Text)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("(%d words, model: %s)\n", report.Simplified.Words, report.Simplified.Model))
}

// writeMetadata writes EXIF metadata when present.
func (w *TextWriter) writeMetadata(sb *strings.Builder, report *model.Report) {
	if report.Image == nil || report.Image.Metadata.IsEmpty() {
		return
	}
	meta := report.Image.Metadata

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("IMAGE METADATA\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	writeIfSet := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-13s %s\n", label+":", value))
		}
	}
	writeIfSet("Camera", strings.TrimSpace(meta.CameraMake+" "+meta.CameraModel))
	writeIfSet("Software", meta.Software)
	writeIfSet("Captured", meta.CaptureTime)
	writeIfSet("Artist", meta.Artist)
	writeIfSet("Copyright", meta.Copyright)
}
