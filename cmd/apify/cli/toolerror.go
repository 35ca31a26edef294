// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies errors returned by command bodies so that
// callers (and --json consumers) can tell bad input from missing
// resources and internal failures without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input
	// that the parser could not catch: an unreadable input file, a
	// malformed JSON value.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// no project in the directory, no runtime on the search path.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryUnavailable indicates a collaborator is not configured
	// or not reachable, such as the platform API client.
	CategoryUnavailable ErrorCategory = "unavailable"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, parse errors on data the CLI itself wrote.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by command bodies. It
// wraps an inner error, preserving the chain for errors.Is and
// errors.As. Use the category constructors rather than building one
// directly.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying error message. The category is not
// part of the text.
func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Unavailable creates an error for a collaborator that cannot serve
// the request.
func Unavailable(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUnavailable, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
