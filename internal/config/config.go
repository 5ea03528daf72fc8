package config

import "time"

// Config holds all application configuration.
// It is built once at startup and passed explicitly to the components that need it.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Weather WeatherConfig `mapstructure:"weather" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may drain on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains the generative-language API settings.
//
// GeminiAPIKey is deliberately optional at load time: a missing key is reported
// as a configuration error by the call that needs it.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	BaseURL               string `mapstructure:"base_url"                validate:"required,url"`
	MaxAttempts           int    `mapstructure:"max_attempts"            validate:"gte=1,lte=10"`
	MaxOutputTokens       int    `mapstructure:"max_output_tokens"       validate:"gt=0"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	InitialBackoffMillis  int    `mapstructure:"initial_backoff_millis"  validate:"gte=0"`
	MaxJitterMillis       int    `mapstructure:"max_jitter_millis"       validate:"gte=0"`
}

// WeatherConfig contains the weather API settings.
type WeatherConfig struct {
	APIKey                string `mapstructure:"api_key"`
	BaseURL               string `mapstructure:"base_url"                validate:"required,url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// RequestTimeout returns the per-attempt timeout for generateContent calls.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// InitialBackoff returns the delay before the first retry.
func (c LLMConfig) InitialBackoff() time.Duration {
	return time.Duration(c.InitialBackoffMillis) * time.Millisecond
}

// MaxJitter returns the upper bound of the random delay added to each backoff.
func (c LLMConfig) MaxJitter() time.Duration {
	return time.Duration(c.MaxJitterMillis) * time.Millisecond
}

// RequestTimeout returns the timeout for a weather lookup.
func (c WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown window.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
