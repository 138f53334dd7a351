package dialog

import "errors"

var (
	// ErrInvalidRequest marks a webhook payload whose session is missing or
	// malformed.
	ErrInvalidRequest = errors.New("invalid webhook request")
	// ErrInvalidDateTime marks a date-time string that could not be parsed
	// as an offset-aware ISO-8601 timestamp.
	ErrInvalidDateTime = errors.New("invalid date-time format")
)
