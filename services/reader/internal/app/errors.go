package app

import "errors"

var (
	// ErrMissingParameter is returned when a verse lookup lacks book or chapter.
	ErrMissingParameter = errors.New("Missing required parameters: book and chapter")
	// ErrInvalidParameter is returned when chapter or verse is not a positive integer.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrRetrieval wraps every datastore failure surfaced to callers.
	ErrRetrieval = errors.New("retrieval failed")
)
