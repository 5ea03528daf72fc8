package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/travel-guide/internal/api/shared"
	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/platform/logger"
	"github.com/phrazzld/travel-guide/internal/service"
)

// ItineraryResponse is the body of a successful POST /generate-itinerary.
type ItineraryResponse struct {
	Itinerary string `json:"itinerary"`
}

// SuggestionsResponse is the body of a successful GET /suggest-trips.
type SuggestionsResponse struct {
	Suggestions string `json:"suggestions"`
}

// TravelHandler handles the travel-guide JSON endpoints.
type TravelHandler struct {
	travelService service.TravelService
}

// NewTravelHandler creates a new TravelHandler.
func NewTravelHandler(travelService service.TravelService) *TravelHandler {
	return &TravelHandler{travelService: travelService}
}

// GenerateItinerary handles POST /generate-itinerary requests.
func (h *TravelHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req domain.ItineraryRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, InvalidRequestMessage, err)
		return
	}

	itinerary, err := h.travelService.GenerateItinerary(r.Context(), &req)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItineraryResponse{Itinerary: itinerary})
}

// GetWeather handles GET /get-weather?city= requests. The upstream document
// is relayed unmodified.
func (h *TravelHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	weather, err := h.travelService.Weather(r.Context(), city)
	if err != nil {
		h.handleError(w, r, err, WeatherErrorPrefix)
		return
	}

	logger.FromContext(r.Context()).Debug("relaying weather data", "city", city, "bytes", len(weather))
	shared.RespondWithJSON(w, r, http.StatusOK, weather)
}

// SuggestTrips handles GET /suggest-trips requests.
func (h *TravelHandler) SuggestTrips(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.travelService.SuggestTrips(r.Context())
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// handleError writes the mapped status and message for err. prefix is
// prepended to server-side failures only.
func (h *TravelHandler) handleError(w http.ResponseWriter, r *http.Request, err error, prefix string) {
	status := MapErrorToStatusCode(err)
	message := ErrorMessage(err)
	if status >= http.StatusInternalServerError {
		message = prefix + message
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
