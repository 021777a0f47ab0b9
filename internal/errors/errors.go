// Package errors provides domain-specific error types for the geoset application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeDataDir indicates that the source data directory is missing or unreadable.
	ErrCodeDataDir ErrorCode = "DATA_DIR_ERROR"

	// ErrCodeList indicates an error related to a single source list (read, parse, expand).
	ErrCodeList ErrorCode = "LIST_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeDownload indicates an error fetching a remote source list.
	ErrCodeDownload ErrorCode = "DOWNLOAD_ERROR"

	// ErrCodeCompile indicates an error invoking the external rule-set compiler.
	ErrCodeCompile ErrorCode = "COMPILE_ERROR"

	// ErrCodePublish indicates an error while publishing built artifacts.
	ErrCodePublish ErrorCode = "PUBLISH_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewDataDirError creates a new data directory error.
func NewDataDirError(message string, cause error) *Error {
	return Wrap(ErrCodeDataDir, message, cause)
}

// NewListError creates a new list operation error.
func NewListError(message string, cause error) *Error {
	return Wrap(ErrCodeList, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewDownloadError creates a new download error.
func NewDownloadError(message string, cause error) *Error {
	return Wrap(ErrCodeDownload, message, cause)
}

// NewCompileError creates a new compiler invocation error.
func NewCompileError(message string, cause error) *Error {
	return Wrap(ErrCodeCompile, message, cause)
}

// NewPublishError creates a new publish error.
func NewPublishError(message string, cause error) *Error {
	return Wrap(ErrCodePublish, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
