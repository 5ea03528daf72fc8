package generation

import "context"

// Default request parameters.
const (
	DefaultMaxOutputTokens = 2048
	DefaultMaxAttempts     = 3

	// Temperature is fixed for every request.
	Temperature = 0.7
)

// Generator turns a prompt into generated text.
type Generator interface {
	// Generate submits prompt and returns the generated text.
	//
	// Errors are the tagged variants from the domain package: *domain.ConfigError
	// when no API key is available, *domain.TransportError for upstream status
	// and network failures, *domain.ParseError for malformed responses.
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Options holds the per-call overrides of a Generate call.
// Zero values mean "use the generator's configured default".
type Options struct {
	Model           string
	APIKey          string
	MaxOutputTokens int
	MaxAttempts     int
}

// Option customizes a single Generate call.
type Option func(*Options)

// WithModel overrides the model, e.g. "models/gemini-2.5-pro".
func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

// WithAPIKey overrides the API key.
func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

// WithMaxOutputTokens overrides the generation token limit.
func WithMaxOutputTokens(n int) Option {
	return func(o *Options) { o.MaxOutputTokens = n }
}

// WithMaxAttempts overrides the attempt budget. Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// Resolve applies opts on top of defaults and fills any remaining zero fields
// with the package defaults.
func Resolve(defaults Options, opts ...Option) Options {
	resolved := defaults
	for _, opt := range opts {
		opt(&resolved)
	}
	if resolved.MaxOutputTokens <= 0 {
		resolved.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if resolved.MaxAttempts < 1 {
		resolved.MaxAttempts = 1
	}
	return resolved
}
