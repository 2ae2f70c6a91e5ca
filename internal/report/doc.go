// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: plain text mirroring the tool's original output file
//   - MarkdownWriter: GitHub Flavored Markdown with an embedded image
//   - JSONWriter: structured JSON for tool integration
//
// Design decision: Report writing is separated from the report data
// structures (in the model package) so new formats can be added
// without touching the pipeline. Writers share the Writer interface
// and are interchangeable at the output stage.
package report
