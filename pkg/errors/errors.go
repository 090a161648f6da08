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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Package manager errors
	ErrBrewExec   ErrorCode = "BREW_EXEC"
	ErrBrewDecode ErrorCode = "BREW_DECODE"
)

// Detail keys attached to package manager errors
const (
	DetailCommand  = "command"
	DetailArgs     = "args"
	DetailExitCode = "exit_code"
	DetailStderr   = "stderr"
)

// UnbrewError represents a structured error with code and details
type UnbrewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnbrewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnbrewError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UnbrewError) Is(target error) bool {
	var targetErr *UnbrewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnbrewError with the given code and message
func New(code ErrorCode, message string) *UnbrewError {
	return &UnbrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnbrewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnbrewError {
	return &UnbrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an UnbrewError
func Wrap(err error, code ErrorCode, message string) *UnbrewError {
	if err == nil {
		return nil
	}
	return &UnbrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnbrewError {
	if err == nil {
		return nil
	}
	return &UnbrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnbrewError) WithDetail(key string, value interface{}) *UnbrewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *UnbrewError) WithDetails(details map[string]interface{}) *UnbrewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an UnbrewError
func GetErrorCode(err error) ErrorCode {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an UnbrewError
func GetErrorDetails(err error) map[string]interface{} {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Details
	}
	return nil
}

// Stderr returns the captured error stream of a failed external call, if the
// error carries one.
func Stderr(err error) string {
	s, _ := GetErrorDetails(err)[DetailStderr].(string)
	return s
}
