package app

import "errors"

// Pre-flight and policy errors. Callers match them with errors.Is.
var (
	ErrMissingInput    = errors.New("input file not found")
	ErrOutputExists    = errors.New("output file exists, move/rename it or specify a new output file")
	ErrUnexpectedParse = errors.New("unexpected parse failure")
)
