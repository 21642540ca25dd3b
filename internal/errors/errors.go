// Package errors provides the structured error type used across the
// generator for category-based classification: configuration errors
// (unsupported language), input errors (consistency-check failures), and
// filesystem errors (output directory and file writes).
package errors

import (
	"errors"
	"fmt"
)

// Category classifies a generator error.
type Category string

const (
	// CategoryConfig marks invalid configuration, such as an unsupported
	// target-language name. Fatal at translator selection time.
	CategoryConfig Category = "config"

	// CategoryInput marks a parsed API description that failed its
	// structural consistency check. Fatal before any output is written.
	CategoryInput Category = "input"

	// CategoryFilesystem marks directory creation or file write failures.
	// Fatal, with no cleanup of partially written output.
	CategoryFilesystem Category = "filesystem"
)

// Error is a generator error with a category, a message, and an optional
// wrapped cause.
type Error struct {
	Category Category
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error in the given category.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Wrap creates an error in the given category wrapping an existing cause.
func Wrap(err error, category Category, message string) *Error {
	return &Error{Category: category, Message: message, Cause: err}
}

// Configf creates a configuration error with a formatted message.
func Configf(format string, args ...any) *Error {
	return &Error{Category: CategoryConfig, Message: fmt.Sprintf(format, args...)}
}

// Inputf creates an input-consistency error with a formatted message.
func Inputf(format string, args ...any) *Error {
	return &Error{Category: CategoryInput, Message: fmt.Sprintf(format, args...)}
}

// IsCategory reports whether err (or anything it wraps) is a generator
// error in the given category.
func IsCategory(err error, category Category) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Category == category
	}
	return false
}

// GetCategory extracts the category from an error chain, or the zero
// Category when the chain carries none.
func GetCategory(err error) Category {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Category
	}
	return ""
}
