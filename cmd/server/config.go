package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/platform/logger"
)

// loadAppConfig loads the application configuration from .env, config.yaml
// and environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the application logger from config settings and
// logs which optional settings are present.
func setupAppLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Output: out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	if cfg.LLM.GeminiAPIKey == "" {
		l.Warn("GOOGLE_API_KEY is not set; itinerary and suggestion requests will fail")
	}
	if cfg.Weather.APIKey == "" {
		l.Warn("OPENWEATHER_API_KEY is not set; weather requests will fail")
	}

	return l, nil
}
