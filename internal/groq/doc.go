// Package groq provides the client for the Groq chat completions API.
//
// Groq exposes an OpenAI-compatible endpoint, so the request and
// response bodies follow the chat completions schema. The client is
// deliberately narrow: one Complete call taking a prompt and returning
// the first choice's text. Authentication failures and empty
// completions get their own sentinel errors because both were common
// failure modes during development and must be distinguishable at the
// top level.
package groq
