package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error classification.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"
	// CodeInvalidArgument marks bad or missing command arguments.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound marks an absent icon, subreddit or remote record.
	CodeNotFound Code = "NOT_FOUND"
	// CodeRemoteUnavailable marks a failed or timed out remote API call.
	CodeRemoteUnavailable Code = "REMOTE_UNAVAILABLE"
	// CodeFatalStartup marks configuration or dataset failures at boot.
	CodeFatalStartup Code = "FATAL_STARTUP"
)

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidArgument   = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "not found"}
	ErrRemoteUnavailable = &Error{Code: CodeRemoteUnavailable, Message: "remote unavailable"}
	ErrFatalStartup      = &Error{Code: CodeFatalStartup, Message: "fatal startup"}
)

// Error is the domain error type with a classification code.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message, safe to show in chat
	Cause   error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError returns an error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError returns an error with the given code wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// ErrorCode extracts the code from err, or CodeUnknown when err carries none.
func ErrorCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnknown
}

// ErrorMessage returns the chat-safe message of a domain error without its
// cause chain, or "" when err is not a domain error.
func ErrorMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
