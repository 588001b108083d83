package entities

import "errors"

var (
	// ErrInvalidFormat is returned when the `pod outdated` output contains a
	// candidate line that does not have the expected shape.
	ErrInvalidFormat = errors.New("invalid pod outdated output")

	// ErrNoSourceURL is returned when a pod's source repository cannot be
	// resolved through the search service, whatever the reason.
	ErrNoSourceURL = errors.New("pod does not have a git source URL")

	// ErrMalformedHostURL is returned when a source URL points at a known
	// hosting platform but its path cannot be turned into a project path.
	ErrMalformedHostURL = errors.New("malformed hosting platform URL")
)
