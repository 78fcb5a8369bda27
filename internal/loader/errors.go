package loader

import (
	"errors"
	"fmt"
)

// LoadErrorCode categorizes load errors.
type LoadErrorCode string

const (
	// ErrCodeSourceNotFound indicates the source could not be opened or read.
	ErrCodeSourceNotFound LoadErrorCode = "SOURCE_NOT_FOUND"

	// ErrCodeMalformedInput indicates the source was read but is not a
	// well-formed set and relation description.
	ErrCodeMalformedInput LoadErrorCode = "MALFORMED_INPUT"
)

// LoadError represents a failure to produce a relation from a source.
type LoadError struct {
	// Code identifies the error category.
	Code LoadErrorCode

	// Message is a human-readable description.
	Message string

	// Source names the file or input being loaded (may be empty).
	Source string

	// Line is the 1-based line number for text sources (0 if unknown).
	Line int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	switch {
	case e.Source != "" && e.Line > 0:
		msg = fmt.Sprintf("%s:%d: %s", e.Source, e.Line, msg)
	case e.Source != "":
		msg = fmt.Sprintf("%s: %s", e.Source, msg)
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsSourceNotFound returns true if the error is a SOURCE_NOT_FOUND error.
// Uses errors.As to handle wrapped errors.
func IsSourceNotFound(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeSourceNotFound
	}
	return false
}

// IsMalformedInput returns true if the error is a MALFORMED_INPUT error.
// Uses errors.As to handle wrapped errors.
func IsMalformedInput(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeMalformedInput
	}
	return false
}

// NewSourceNotFoundError creates a LoadError for an unreadable source.
func NewSourceNotFoundError(source string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeSourceNotFound,
		Message: "source not found",
		Source:  source,
		Err:     err,
	}
}

// malformed creates a MALFORMED_INPUT error at the given line.
func malformed(line int, format string, args ...any) *LoadError {
	return &LoadError{
		Code:    ErrCodeMalformedInput,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}
