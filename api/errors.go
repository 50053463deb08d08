// File: api/errors.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// Sentinel errors for errors.Is matching. Every *Error unwraps to the
// sentinel of its ErrorCode, so callers can branch without inspecting
// codes directly.
var (
	ErrAllocationFailed = fmt.Errorf("storage allocation failed")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrHandleNotFound   = fmt.Errorf("handle not found")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeAllocation
	ErrCodeInvalidArgument
	ErrCodeNotFound
	ErrCodeInternal
)

// Error represents a structured error with code and context.
//
// Only construction and handle-lookup paths produce errors; the
// Write/Read hot paths signal back-pressure via their return counts
// and never allocate an Error.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error's code to its sentinel so errors.Is works on
// wrapped Error values. Codes without a sentinel unwrap to nil.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeAllocation:
		return ErrAllocationFailed
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeNotFound:
		return ErrHandleNotFound
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
