package client

import (
	"errors"
	"fmt"
)

// Both failure kinds are fatal: the judge is trusted to follow the protocol,
// so any violation means the environment is broken.
var (
	ErrProtocolViolation = errors.New("protocol violation")
	ErrSchemaMismatch    = errors.New("schema mismatch")
)

// ErrorCode is a numeric error code for log correlation.
type ErrorCode int

const (
	// ErrorCodeProtocolViolation covers framing faults: the stream closed
	// early, the sentinel line was missing or wrong, or reads and writes were
	// called out of order.
	ErrorCodeProtocolViolation ErrorCode = 1007
	// ErrorCodeSchema covers a state line that does not match the expected
	// message shape.
	ErrorCodeSchema ErrorCode = 3006
)

func (c ErrorCode) sentinel() error {
	switch c {
	case ErrorCodeProtocolViolation:
		return ErrProtocolViolation
	case ErrorCodeSchema:
		return ErrSchemaMismatch
	default:
		return nil
	}
}

// Error is a client failure with additional context.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Code.sentinel(), e.Message)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel of the error's code.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Code.sentinel()
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// IsFatal reports whether the process must stop. Every client error is.
func (e *Error) IsFatal() bool {
	return true
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

func protocolViolation(message string, cause error) *Error {
	return newError(ErrorCodeProtocolViolation, message, cause)
}

func schemaError(message string, cause error) *Error {
	return newError(ErrorCodeSchema, message, cause)
}
