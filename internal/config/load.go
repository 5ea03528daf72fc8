package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied before any source is read.
const (
	DefaultPort            = 5000
	DefaultLogLevel        = "info"
	DefaultModelName       = "models/gemini-2.5-flash"
	DefaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1"
	DefaultWeatherBaseURL  = "http://api.openweathermap.org"
	DefaultMaxAttempts     = 3
	DefaultMaxOutputTokens = 2048
)

// envBindings maps configuration keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.port":                     "PORT",
	"server.log_level":                "LOG_LEVEL",
	"server.shutdown_timeout_seconds": "SHUTDOWN_TIMEOUT_SECONDS",
	"llm.gemini_api_key":              "GOOGLE_API_KEY",
	"llm.model_name":                  "MODEL_NAME",
	"llm.base_url":                    "GEMINI_BASE_URL",
	"llm.max_attempts":                "GEMINI_MAX_ATTEMPTS",
	"llm.max_output_tokens":           "GEMINI_MAX_OUTPUT_TOKENS",
	"llm.request_timeout_seconds":     "GEMINI_TIMEOUT_SECONDS",
	"llm.initial_backoff_millis":      "GEMINI_INITIAL_BACKOFF_MILLIS",
	"llm.max_jitter_millis":           "GEMINI_MAX_JITTER_MILLIS",
	"weather.api_key":                 "OPENWEATHER_API_KEY",
	"weather.base_url":                "OPENWEATHER_BASE_URL",
	"weather.request_timeout_seconds": "OPENWEATHER_TIMEOUT_SECONDS",
}

// Load reads configuration from a .env file (if present), an optional
// config.yaml in the working directory, and the environment.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".env", ".")
}

// LoadFrom is Load with an explicit .env path and config.yaml search directory.
// An empty envFile skips dotenv loading.
func LoadFrom(envFile, configDir string) (*Config, error) {
	if envFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", DefaultGeminiBaseURL)
	v.SetDefault("llm.max_attempts", DefaultMaxAttempts)
	v.SetDefault("llm.max_output_tokens", DefaultMaxOutputTokens)
	v.SetDefault("llm.request_timeout_seconds", 120)
	v.SetDefault("llm.initial_backoff_millis", 1000)
	v.SetDefault("llm.max_jitter_millis", 500)

	v.SetDefault("weather.base_url", DefaultWeatherBaseURL)
	v.SetDefault("weather.request_timeout_seconds", 10)
}
