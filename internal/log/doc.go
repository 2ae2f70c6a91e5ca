// Package log provides slog-based logging with automatic credential
// redaction. Every apodex run carries a NASA API key and a Groq API key
// in memory; this package makes sure neither leaks into log output,
// even at debug verbosity.
package log
