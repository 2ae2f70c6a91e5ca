// Package simplify turns a technical APOD explanation into a
// beginner-friendly one through a completion API.
//
// The package owns the prompt template and the Completer interface the
// Groq client satisfies, so tests can substitute a fake completer
// without any network access. The "under 100 words" target lives only
// in the prompt text; nothing here verifies or truncates the output.
package simplify
