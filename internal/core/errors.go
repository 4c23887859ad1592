package core

import "errors"

// Error taxonomy surfaced to transports. Wrap with fmt.Errorf("...: %w", err)
// and test with errors.Is.
var (
	// ErrInvalidArgument covers empty chat input and empty rename targets.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound covers reads, renames and deletes of unknown sessions.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable covers completion provider failures and
	// timeouts. By the time it is returned the user message has already been
	// appended, so no input is lost.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
