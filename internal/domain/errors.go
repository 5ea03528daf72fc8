package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Every tagged error below unwraps to one of them.
var (
	// ErrInvalidConfig is returned when a required setting such as an API key is missing.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput is returned when a caller omits a required field or parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamStatus is returned when an upstream API answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("upstream returned an error status")

	// ErrTransport is returned when an upstream API could not be reached or timed out.
	ErrTransport = errors.New("upstream request failed")

	// ErrInvalidResponse is returned when an upstream body cannot be parsed or lacks expected fields.
	ErrInvalidResponse = errors.New("unexpected API response format")
)

// ConfigError reports a missing or invalid local setting. It is fatal for the
// call that needs the setting and is never retried.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s not set", e.Setting)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ClientInputError reports a missing required field or query parameter.
// Message is safe to return to the caller verbatim.
type ClientInputError struct {
	Field   string
	Message string
}

// NewClientInputError creates a ClientInputError for field.
func NewClientInputError(field, message string) *ClientInputError {
	return &ClientInputError{Field: field, Message: message}
}

func (e *ClientInputError) Error() string {
	return e.Message
}

func (e *ClientInputError) Unwrap() error { return ErrInvalidInput }

// TransportError reports a failed exchange with an upstream API.
//
// A positive Status means the upstream answered with a well-formed non-2xx
// response; Body then holds the raw response text. A zero Status means the
// request never produced a response (network failure, timeout) and Err holds
// the cause.
type TransportError struct {
	Service string
	Status  int
	Body    string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s HTTP error: %d - %s", e.Service, e.Status, e.Body)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() []error {
	sentinel := ErrTransport
	if e.Status > 0 {
		sentinel = ErrUpstreamStatus
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// ParseError reports a 2xx response whose body is not valid JSON or does not
// have the expected shape. Body holds the full raw response for diagnostics.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unexpected API response format: %s", e.Body)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidResponse}
	}
	return []error{ErrInvalidResponse, e.Err}
}

// Retryable reports whether a failed outbound attempt may be repeated.
//
// Configuration and input errors are local and final. An upstream status
// error is final as well; only failures that never produced a well-formed
// HTTP response (network errors, timeouts, malformed or mis-shaped bodies)
// are retried. Cancellation of the caller's context is final.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var (
		configErr    *ConfigError
		inputErr     *ClientInputError
		transportErr *TransportError
		parseErr     *ParseError
	)

	switch {
	case errors.As(err, &configErr), errors.As(err, &inputErr):
		return false
	case errors.As(err, &transportErr):
		return transportErr.Status == 0
	case errors.As(err, &parseErr):
		return true
	case errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}
