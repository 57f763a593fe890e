package orgid

import "errors"

var (
	// ErrEntropy is returned when the random source fails to supply bytes.
	ErrEntropy = errors.New("orgid: entropy source failed")

	// ErrInvalidID is returned when a value is not a time-ordered identifier.
	ErrInvalidID = errors.New("orgid: invalid identifier")
)
