package config

import (
	"errors"
	"fmt"
)

// Document loading and composition errors
var (
	// ErrNoSpans is returned when a document defines no spans at all
	ErrNoSpans = errors.New("document has no spans")

	// ErrUnsupportedVersion is returned when the document version is not recognized
	ErrUnsupportedVersion = errors.New("unsupported document version")

	// ErrEmptyPath is returned when the document file path is empty
	ErrEmptyPath = errors.New("document file path is empty")
)

// SpanError reports a problem with a single span, identified by its
// zero-based position in the document.
type SpanError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *SpanError) Error() string {
	return fmt.Sprintf("span %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *SpanError) Unwrap() error {
	return e.Err
}
