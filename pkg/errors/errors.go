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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule compilation errors
	ErrRuleCompile      ErrorCode = "RULE_COMPILE"
	ErrConditionInvalid ErrorCode = "CONDITION_INVALID"
	ErrPropertyUnknown  ErrorCode = "PROPERTY_UNKNOWN"

	// Handler errors
	ErrHandlerNotFound ErrorCode = "HANDLER_NOT_FOUND"
	ErrHandlerInvalid  ErrorCode = "HANDLER_INVALID"
)

// RulesetError represents a structured error with code and details
type RulesetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RulesetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RulesetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RulesetError) Is(target error) bool {
	var targetErr *RulesetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RulesetError with the given code and message
func New(code ErrorCode, message string) *RulesetError {
	return &RulesetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RulesetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RulesetError {
	return &RulesetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RulesetError
func Wrap(err error, code ErrorCode, message string) *RulesetError {
	if err == nil {
		return nil
	}
	return &RulesetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RulesetError {
	if err == nil {
		return nil
	}
	return &RulesetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RulesetError) WithDetail(key string, value interface{}) *RulesetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RulesetError) WithDetails(details map[string]interface{}) *RulesetError {
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
	var rsErr *RulesetError
	if errors.As(err, &rsErr) {
		return rsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RulesetError
func GetErrorCode(err error) ErrorCode {
	var rsErr *RulesetError
	if errors.As(err, &rsErr) {
		return rsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RulesetError
func GetErrorDetails(err error) map[string]interface{} {
	var rsErr *RulesetError
	if errors.As(err, &rsErr) {
		return rsErr.Details
	}
	return nil
}
