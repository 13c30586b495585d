package skynet

import (
	"errors"
)

var (
	// ErrInvalidSkylinkType is returned when a non-string value is given as a skylink
	ErrInvalidSkylinkType = errors.New("skylink has to be a string")

	// ErrSkylinkExtraction is returned when no skylink could be found in the input
	ErrSkylinkExtraction = errors.New("could not extract skylink")

	// ErrInvalidURL is returned when a URL cannot be parsed
	ErrInvalidURL = errors.New("invalid url")
)
