package ucp

import "errors"

var (
	// ErrNoContainer means no UCP container signature was found in the
	// input buffer. Per-input diagnostic, not fatal to a batch run.
	ErrNoContainer = errors.New("no AMI UCP container signature found")

	// ErrTruncated means a declared fixed-layout structure does not fit
	// the remaining buffer. Traversal is cut short, never read past.
	ErrTruncated = errors.New("structure truncated")
)
