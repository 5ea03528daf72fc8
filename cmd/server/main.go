// Package main implements the entry point for the travel guide server,
// which serves the browser pages and the itinerary, weather and trip
// suggestion endpoints.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Travel guide server failed: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and serves
// until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("Travel guide server starting", "port", cfg.Server.Port)
	return app.Run(ctx)
}
