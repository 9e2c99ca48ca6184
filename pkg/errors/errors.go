package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// User (unit) errors
	ErrUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrUserScan     ErrorCode = "USER_SCAN"

	// Document errors
	ErrDocumentRead  ErrorCode = "DOCUMENT_READ"
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentWrite ErrorCode = "DOCUMENT_WRITE"

	// Snapshot errors
	ErrSnapshotCopy ErrorCode = "SNAPSHOT_COPY"
	ErrSnapshotArea ErrorCode = "SNAPSHOT_AREA"

	// Index errors
	ErrIndexWrite ErrorCode = "INDEX_WRITE"

	// Link errors
	ErrLinkCreate  ErrorCode = "LINK_CREATE"
	ErrLinkRemove  ErrorCode = "LINK_REMOVE"
	ErrLinkSource  ErrorCode = "LINK_SOURCE"
	ErrLinkPolicy  ErrorCode = "LINK_POLICY"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrPlanInvalid ErrorCode = "PLAN_INVALID"
)

// WardenError represents a structured error with code and details
type WardenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WardenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WardenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WardenError) Is(target error) bool {
	var targetErr *WardenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail field and returns the error for chaining
func (e *WardenError) WithDetail(key string, value interface{}) *WardenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new WardenError with the given code and message
func New(code ErrorCode, message string) *WardenError {
	return &WardenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WardenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WardenError {
	return &WardenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WardenError
func Wrap(err error, code ErrorCode, message string) *WardenError {
	if err == nil {
		return nil
	}
	return &WardenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WardenError {
	if err == nil {
		return nil
	}
	return &WardenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Code extracts the ErrorCode from an error, or ErrUnknown if it is not
// a WardenError.
func Code(err error) ErrorCode {
	var werr *WardenError
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ErrUnknown
}
