package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/generation"
)

// CityRequiredMessage is the caller-facing message for a weather lookup without a city.
const CityRequiredMessage = "City parameter is required"

// WeatherFetcher looks up current conditions for a city and returns the
// upstream JSON document unmodified.
type WeatherFetcher interface {
	CurrentWeather(ctx context.Context, city string) (json.RawMessage, error)
}

// TravelService provides the travel-guide use cases.
type TravelService interface {
	// GenerateItinerary validates req and returns a Markdown itinerary.
	GenerateItinerary(ctx context.Context, req *domain.ItineraryRequest) (string, error)

	// SuggestTrips returns a Markdown list of suggested destinations.
	SuggestTrips(ctx context.Context) (string, error)

	// Weather returns the raw weather document for city.
	Weather(ctx context.Context, city string) (json.RawMessage, error)
}

type travelServiceImpl struct {
	generator generation.Generator
	weather   WeatherFetcher
	logger    *slog.Logger
}

// NewTravelService creates a TravelService.
func NewTravelService(
	generator generation.Generator,
	weather WeatherFetcher,
	logger *slog.Logger,
) (TravelService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if weather == nil {
		return nil, errors.New("weather fetcher cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &travelServiceImpl{
		generator: generator,
		weather:   weather,
		logger:    logger.With("component", "travel_service"),
	}, nil
}

func (s *travelServiceImpl) GenerateItinerary(
	ctx context.Context,
	req *domain.ItineraryRequest,
) (string, error) {
	if req == nil {
		return "", domain.NewClientInputError("request", domain.MissingFieldsMessage)
	}
	if err := req.Validate(); err != nil {
		s.logger.DebugContext(ctx, "rejected itinerary request", "error", err)
		return "", err
	}

	s.logger.InfoContext(ctx, "generating itinerary",
		"destination", req.Destination,
		"days", string(req.Days))

	prompt := ItineraryPrompt(req.Destination, string(req.Days), string(req.Interests))
	return s.generator.Generate(ctx, prompt)
}

func (s *travelServiceImpl) SuggestTrips(ctx context.Context) (string, error) {
	s.logger.InfoContext(ctx, "generating trip suggestions")
	return s.generator.Generate(ctx, SuggestionsPrompt())
}

func (s *travelServiceImpl) Weather(ctx context.Context, city string) (json.RawMessage, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.NewClientInputError("city", CityRequiredMessage)
	}
	return s.weather.CurrentWeather(ctx, city)
}
