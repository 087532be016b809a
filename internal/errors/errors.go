package errors

import (
	"errors"
	"fmt"
)

// Error codes surfaced to agents through both transports.
const (
	CodeDocNotFound      = "DOC_NOT_FOUND"
	CodeDocExists        = "DOC_EXISTS"
	CodeDocNameInvalid   = "DOC_NAME_INVALID"
	CodeToolNotFound     = "TOOL_NOT_FOUND"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeInvalidParams    = "INVALID_PARAMS"
	CodeProjectInvalid   = "PROJECT_INVALID"
	CodeInternal         = "INTERNAL_ERROR"
)

// Error represents a ledgerview error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new ledgerview error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ledgerview error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a ledgerview error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var lvErr *Error
	if errors.As(err, &lvErr) {
		return lvErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// DocNotFound creates a DOC_NOT_FOUND error.
func DocNotFound(id string) *Error {
	return New(CodeDocNotFound, fmt.Sprintf("documentation %q not found", id))
}

// DocExists creates a DOC_EXISTS error.
func DocExists(id string) *Error {
	return New(CodeDocExists, fmt.Sprintf("documentation %q already exists", id))
}

// DocNameInvalid creates a DOC_NAME_INVALID error.
func DocNameInvalid(name, reason string) *Error {
	return New(CodeDocNameInvalid, fmt.Sprintf("documentation name %q is invalid: %s", name, reason))
}

// ToolNotFound creates a TOOL_NOT_FOUND error.
func ToolNotFound(name string) *Error {
	return New(CodeToolNotFound, fmt.Sprintf("tool %q is not registered", name))
}

// ResourceNotFound creates a RESOURCE_NOT_FOUND error.
func ResourceNotFound(uri string) *Error {
	return New(CodeResourceNotFound, fmt.Sprintf("resource %q is not registered", uri))
}

// InvalidParams creates an INVALID_PARAMS error.
func InvalidParams(message string) *Error {
	return New(CodeInvalidParams, message)
}

// ProjectInvalid creates a PROJECT_INVALID error wrapping the underlying cause.
func ProjectInvalid(path string, err error) *Error {
	return Wrap(CodeProjectInvalid, fmt.Sprintf("failed to analyze project at %q", path), err)
}

// Internal creates an INTERNAL_ERROR error wrapping the underlying cause.
func Internal(message string, err error) *Error {
	return Wrap(CodeInternal, message, err)
}
