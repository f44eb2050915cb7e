package calendar

import "errors"

var (
	// ErrFetchFailed wraps store errors: the store was unreachable or
	// returned a failure. Presentation shows an error state, no partial data.
	ErrFetchFailed = errors.New("calendar: fetch failed")

	// ErrInvalidAppointment marks a malformed record (end not after start)
	// coming out of the store. Such records are rejected before layout
	// rather than rendered with zero height.
	ErrInvalidAppointment = errors.New("calendar: invalid appointment interval")
)
