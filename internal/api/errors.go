package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/redact"
)

// Caller-facing messages that do not come from an error value.
const (
	InvalidRequestMessage = "Invalid request format"
	WeatherErrorPrefix    = "Could not fetch weather data: "
	UnexpectedMessage     = "An unexpected error occurred"
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
// Only caller mistakes are 4xx; every upstream or configuration failure is a 500.
func MapErrorToStatusCode(err error) int {
	var inputErr *domain.ClientInputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the message sent to the caller for err.
//
// Input errors carry their own message. Other errors are described by their
// text with credentials removed, so an upstream status and body reach the
// browser the same way they reach the logs.
func ErrorMessage(err error) string {
	if err == nil {
		return UnexpectedMessage
	}

	var inputErr *domain.ClientInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}

	return redact.Error(err)
}
