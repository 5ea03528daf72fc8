package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when Generate is called without prompt text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// serviceName labels errors and logs produced by this package.
const serviceName = "Generative API"
