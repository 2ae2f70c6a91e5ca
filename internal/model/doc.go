// Package model defines the core data structures for apodex.
//
// This package contains the APOD record parsed from the NASA API,
// the simplified explanation produced by the completion API, and the
// Report struct that accumulates both plus the downloaded image.
//
// Design decision: Data structures are separated from the clients that
// produce them and the writers that render them. This keeps the model
// package dependency-free and allows both sides to be tested with
// hand-built values.
package model
