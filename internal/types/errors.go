package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for OH-Toolkit errors.
type ErrorCode string

// Path error codes
const (
	PATH_PARSE_FAILED ErrorCode = "PATH_PARSE_FAILED"
)

// Profile loading error codes
const (
	PROFILE_DIR_UNREADABLE ErrorCode = "PROFILE_DIR_UNREADABLE"
	PROFILE_DECODE_FAILED  ErrorCode = "PROFILE_DECODE_FAILED"
)

// Extraction error codes
const (
	EXTRACT_BAD_REQUEST ErrorCode = "EXTRACT_BAD_REQUEST"
)

// Recipe error codes
const (
	RECIPE_LOAD_FAILED       ErrorCode = "RECIPE_LOAD_FAILED"
	RECIPE_PARSE_FAILED      ErrorCode = "RECIPE_PARSE_FAILED"
	RECIPE_VALIDATION_FAILED ErrorCode = "RECIPE_VALIDATION_FAILED"
	RECIPE_NOT_FOUND         ErrorCode = "RECIPE_NOT_FOUND"
	RECIPE_DUPLICATE         ErrorCode = "RECIPE_DUPLICATE"
)

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Sink error codes
const (
	SINK_OPEN_FAILED  ErrorCode = "SINK_OPEN_FAILED"
	SINK_WRITE_FAILED ErrorCode = "SINK_WRITE_FAILED"
)

// Filter error codes
const (
	FILTER_BAD_DATE_RANGE ErrorCode = "FILTER_BAD_DATE_RANGE"
)

// ToolkitError represents a structured error with error code, message, and optional cause.
// These are reserved for caller mistakes and environmental failures: an unresolvable
// path inside a profile is never a ToolkitError, it degrades to an absence marker.
type ToolkitError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ToolkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *ToolkitError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a ToolkitError with the same Code.
func (e *ToolkitError) Is(target error) bool {
	var tkErr *ToolkitError
	if errors.As(target, &tkErr) {
		return e.Code == tkErr.Code
	}
	return false
}

// NewError creates a new ToolkitError with the given code and message.
func NewError(code ErrorCode, message string) *ToolkitError {
	return &ToolkitError{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// NewErrorf creates a new ToolkitError with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *ToolkitError {
	return &ToolkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// WrapError creates a new ToolkitError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *ToolkitError {
	return &ToolkitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
