// Package main provides the entry point for the apodex CLI.
//
// apodex fetches NASA's Astronomy Picture of the Day, rewrites the
// technical explanation into beginner-friendly language via the Groq
// completion API, and saves the picture together with both texts.
//
// Usage:
//
//	apodex explain
//	apodex explain --date 2025-06-01
//
// See --help for all available options.
package main

// main is the entry point for apodex.
func main() {
	Execute()
}
