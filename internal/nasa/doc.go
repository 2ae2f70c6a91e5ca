// Package nasa provides the client for the NASA APOD API.
//
// The client performs one GET per record with the API key and optional
// date as query parameters, and a second GET to download the image
// itself. A record whose JSON lacks a non-empty explanation field is
// rejected with ErrMissingExplanation rather than passed downstream,
// because a blank explanation would silently produce a blank report.
package nasa
