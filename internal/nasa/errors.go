package nasa

import "errors"

// Fetch errors returned by the APOD client.
//
// Design decision: Sentinel errors so the cmd layer and tests can
// classify failures with errors.Is. Status-dependent details are
// attached by wrapping these sentinels with fmt.Errorf at the call
// site, keeping the sentinel matchable.
var (
	// ErrMissingExplanation is returned when the APOD response parses
	// but carries no explanation text. This has been observed on rare
	// records; surfacing it explicitly prevents an empty report body.
	ErrMissingExplanation = errors.New("APOD response has no explanation field")

	// ErrUnexpectedStatus is returned when the APOD API answers with a
	// non-200 status. The wrapped message includes the status code.
	ErrUnexpectedStatus = errors.New("APOD API returned unexpected status")

	// ErrImageTooLarge is returned when the image exceeds the
	// configured download size limit.
	ErrImageTooLarge = errors.New("image exceeds maximum download size")
)
