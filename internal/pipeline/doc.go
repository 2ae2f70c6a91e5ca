// Package pipeline orchestrates the apodex run as a sequence of steps.
//
// The flow is strictly linear: fetch the APOD record, download its
// image, simplify the explanation. The simplify step consumes the
// fetch step's output, so the ordering is a hard data dependency and
// the pipeline stops on the first error; there is nothing useful to
// do downstream of a failed fetch.
package pipeline
