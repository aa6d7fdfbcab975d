package stocks

import "errors"

// Root errors of the package. All failures wrap one of these so callers can
// dispatch with errors.Is.
var (
	// ErrValidation reports malformed input (non-positive quantity, bad date).
	// The ledger is left unchanged when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports a lookup for an unknown instrument.
	ErrNotFound = errors.New("instrument not found")

	// ErrStorage reports an unreadable, unwritable, or schema-mismatched
	// backing file. It is never retried.
	ErrStorage = errors.New("storage failure")
)
