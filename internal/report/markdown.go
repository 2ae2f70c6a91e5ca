package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/apodex/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables and embedded images
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeImage(md, report)
	w.writeOriginal(md, report)
	w.writeSimplified(md, report)
	w.writeMetadata(md, report)
	w.writeFooter(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the record info table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	title := "Astronomy Picture of the Day"
	if report.Apod != nil && report.Apod.Title != "" {
		title = report.Apod.Title
	}
	md.H1(title)
	md.PlainText("")

	rows := [][]string{}
	if report.Apod != nil {
		rows = append(rows, []string{"Date", report.Apod.Date})
		rows = append(rows, []string{"Media Type", report.Apod.MediaType})
		if report.Apod.Copyright != "" {
			rows = append(rows, []string{"Credit", report.Apod.Copyright})
		}
	}
	rows = append(rows, []string{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")})
	if report.Simplified != nil {
		rows = append(rows, []string{"Model", "`" + report.Simplified.Model + "`"})
	}
	rows = append(rows, []string{"Status", w.getStatusText(report)})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.Report) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeImage embeds the picture. The saved local copy wins over the
// remote URL so the markdown file stays viewable offline.
func (w *MarkdownWriter) writeImage(md *markdown.Markdown, report *model.Report) {
	if report.Apod == nil || report.Image == nil {
		return
	}

	if report.Apod.IsVideo() {
		md.PlainTextf("▶️ Today's APOD is a video: [%s](%s)", report.Apod.Title, report.Apod.URL)
		md.PlainText("")
		return
	}

	src := report.Image.URL
	if report.Image.LocalPath != "" {
		src = report.Image.LocalPath
	}
	if src == "" {
		return
	}

	md.PlainTextf("![%s](%s)", report.Apod.Title, src)
	md.PlainText("")
}

// writeOriginal writes the original NASA explanation.
func (w *MarkdownWriter) writeOriginal(md *markdown.Markdown, report *model.Report) {
	if report.Apod == nil {
		return
	}

	md.H2("Original Explanation")
	md.PlainText("")
	md.PlainText(report.Apod.Explanation)
	md.PlainText("")
}

// writeSimplified writes the simplified explanation section.
func (w *MarkdownWriter) writeSimplified(md *markdown.Markdown, report *model.Report) {
	if report.Simplified == nil {
		return
	}

	md.H2("Simplified Version")
	md.PlainText("")
	md.PlainText(report.Simplified.Text)
	md.PlainText("")
	md.PlainTextf("*%d words*", report.Simplified.Words)
	md.PlainText("")
}

// writeMetadata writes the EXIF metadata table when the downloaded
// image carried any.
func (w *MarkdownWriter) writeMetadata(md *markdown.Markdown, report *model.Report) {
	if report.Image == nil || report.Image.Metadata.IsEmpty() {
		return
	}
	meta := report.Image.Metadata

	rows := [][]string{}
	appendIfSet := func(label, value string) {
		if value != "" {
			rows = append(rows, []string{label, value})
		}
	}
	appendIfSet("Camera", strings.TrimSpace(meta.CameraMake+" "+meta.CameraModel))
	appendIfSet("Software", meta.Software)
	appendIfSet("Captured", meta.CaptureTime)
	appendIfSet("Artist", meta.Artist)
	appendIfSet("Copyright", meta.Copyright)
	if len(rows) == 0 {
		return
	}

	md.H2("Image Metadata")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Tag", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, report *model.Report) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [apodex](https://github.com/nao1215/apodex) (%s pipeline step(s))*",
		strconv.Itoa(len(report.PerformedSteps)))
}
