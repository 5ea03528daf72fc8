package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/generation"
	"github.com/phrazzld/travel-guide/internal/platform/gemini"
	"github.com/phrazzld/travel-guide/internal/platform/openweather"
	"github.com/phrazzld/travel-guide/internal/service"
	"github.com/phrazzld/travel-guide/internal/web"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator     generation.Generator
	weather       service.WeatherFetcher
	travelService service.TravelService
	pages         *web.Pages
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewClient(logger.With("component", "generative_client"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generative client: %w", err)
	}

	weather, err := openweather.NewClient(logger.With("component", "weather_client"), cfg.Weather)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize weather client: %w", err)
	}

	return newApplicationWith(cfg, logger, generator, weather)
}

// newApplicationWith wires the application around the given outbound clients.
func newApplicationWith(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
	weather service.WeatherFetcher,
) (*application, error) {
	travelService, err := service.NewTravelService(generator, weather, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create travel service: %w", err)
	}

	pages, err := web.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	logger.Info("Application initialized successfully")
	return &application{
		config:        cfg,
		logger:        logger,
		generator:     generator,
		weather:       weather,
		travelService: travelService,
		pages:         pages,
	}, nil
}

// Run starts the HTTP server and blocks until it has shut down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
