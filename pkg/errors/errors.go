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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Bundle errors
	ErrBundleNotFound ErrorCode = "BUNDLE_NOT_FOUND"
	ErrBundleAccess   ErrorCode = "BUNDLE_ACCESS"

	// Descriptor errors
	ErrDescriptorNotFound ErrorCode = "DESCRIPTOR_NOT_FOUND"
	ErrDescriptorWrite    ErrorCode = "DESCRIPTOR_WRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrIconCopy   ErrorCode = "ICON_COPY"

	// External collaborator errors
	ErrPackageInstall ErrorCode = "PACKAGE_INSTALL"
	ErrLauncherIndex  ErrorCode = "LAUNCHER_INDEX"
)

// AppinError represents a structured error with code and details
type AppinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AppinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AppinError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AppinError) Is(target error) bool {
	var targetErr *AppinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AppinError with the given code and message
func New(code ErrorCode, message string) *AppinError {
	return &AppinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AppinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppinError {
	return &AppinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AppinError
func Wrap(err error, code ErrorCode, message string) *AppinError {
	if err == nil {
		return nil
	}
	return &AppinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppinError {
	if err == nil {
		return nil
	}
	return &AppinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AppinError) WithDetail(key string, value interface{}) *AppinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var appinErr *AppinError
	if errors.As(err, &appinErr) {
		return appinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AppinError
func GetErrorCode(err error) ErrorCode {
	var appinErr *AppinError
	if errors.As(err, &appinErr) {
		return appinErr.Code
	}
	return ErrUnknown
}
