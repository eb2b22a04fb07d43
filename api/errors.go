// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrCapacityExceeded reports an insert into a full ring.
	ErrCapacityExceeded = errors.New("ring capacity exceeded")
	// ErrUnderflow reports a removal from an empty ring.
	ErrUnderflow = errors.New("ring underflow")
	// ErrInvalidCapacity reports a non-positive ring capacity.
	ErrInvalidCapacity = errors.New("ring capacity must be positive")
	// ErrInvalidArgument reports malformed configuration or input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSupported reports an operation the ring cannot perform, such as resizing.
	ErrNotSupported = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeCapacityExceeded
	ErrCodeUnderflow
	ErrCodeNotSupported
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeCapacityExceeded:
		return "capacity_exceeded"
	case ErrCodeUnderflow:
		return "underflow"
	case ErrCodeNotSupported:
		return "not_supported"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the wrapped sentinel to errors.Is.
func (e *Error) Unwrap() error {
	return e.cause
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

// Wrap records cause as the underlying error.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
