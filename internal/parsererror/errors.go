// Package parsererror defines the typed errors of the import pipeline.
package parsererror

import "fmt"

// ParseError records why a single row was rejected. Row-level failures
// are never surfaced to callers; parsers log them and move on, so this
// type mostly shows up at debug level.
type ParseError struct {
	Source string
	Row    int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: failed to parse %s: %v", e.Source, e.Row, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError signals that the input does not conform to the
// format a parser expects. It fails the whole import attempt.
type InvalidFormatError struct {
	Source string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s input: %s", e.Source, e.Reason)
}

// EmptyImportError is returned by the upload dispatch when an import
// attempt produced zero transactions. Its message is the user-visible
// wording for that situation.
type EmptyImportError struct {
	Filename string
}

func (e *EmptyImportError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("unrecognized or empty file: %s", e.Filename)
	}
	return "unrecognized or empty file"
}
