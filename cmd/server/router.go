package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/travel-guide/internal/api"
	apiMiddleware "github.com/phrazzld/travel-guide/internal/api/middleware"
	"github.com/phrazzld/travel-guide/internal/web"
	"github.com/rs/cors"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	travelHandler := api.NewTravelHandler(app.travelService)
	pageHandler := api.NewPageHandler(app.pages)

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get("/suggestions", pageHandler.Suggestions)
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	// JSON endpoints
	r.Post("/generate-itinerary", travelHandler.GenerateItinerary)
	r.Get("/get-weather", travelHandler.GetWeather)
	r.Get("/suggest-trips", travelHandler.SuggestTrips)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
