package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kyotoMarkdown = "# Kyoto in 3 days\n## Day 1\n- Fushimi Inari"

// upstreams fakes both outbound APIs on one server and counts calls to each.
type upstreams struct {
	server          *httptest.Server
	generateCalls   atomic.Int32
	weatherCalls    atomic.Int32
	lastPrompt      atomic.Value
	generateHandler http.HandlerFunc
}

func newUpstreams(t *testing.T) *upstreams {
	t.Helper()
	u := &upstreams{}
	u.generateHandler = func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			u.lastPrompt.Store(req.Contents[0].Parts[0].Text)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + quote(kyotoMarkdown) + `}]}}]}`))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		u.generateCalls.Add(1)
		u.generateHandler(w, r)
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		u.weatherCalls.Add(1)
		_, _ = w.Write([]byte(`{"name":"` + r.URL.Query().Get("q") + `","main":{"temp":21.5},"weather":[{"description":"few clouds","icon":"02d"}]}`))
	})
	u.server = httptest.NewServer(mux)
	t.Cleanup(u.server.Close)
	return u
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestRouter(t *testing.T, u *upstreams) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, LogLevel: "debug"},
		LLM: config.LLMConfig{
			GeminiAPIKey:          "test-google-key",
			ModelName:             config.DefaultModelName,
			BaseURL:               u.server.URL + "/v1",
			MaxAttempts:           3,
			MaxOutputTokens:       2048,
			RequestTimeoutSeconds: 5,
			InitialBackoffMillis:  1,
		},
		Weather: config.WeatherConfig{
			APIKey:                "test-weather-key",
			BaseURL:               u.server.URL,
			RequestTimeoutSeconds: 5,
		},
	}
	log, _ := logger.GetTestLogger(t)
	app, err := newApplication(cfg, log)
	require.NoError(t, err)
	return app.setupRouter()
}

func TestRouterEndToEndItinerary(t *testing.T) {
	u := newUpstreams(t)
	router := newTestRouter(t, u)

	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary",
		strings.NewReader(`{"destination":"Kyoto","days":3,"interests":"temples, food"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"itinerary":`+quote(kyotoMarkdown)+`}`, rec.Body.String())
	assert.EqualValues(t, 1, u.generateCalls.Load())
	assert.Equal(t,
		"Create a detailed, day-by-day travel itinerary for a trip to Kyoto for 3 days. "+
			"The traveler is interested in temples, food. Format the output in clean Markdown.",
		u.lastPrompt.Load())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouterMissingFieldsNeverCallUpstream(t *testing.T) {
	u := newUpstreams(t)
	router := newTestRouter(t, u)

	for _, body := range []string{`{}`, `{"destination":"Kyoto"}`, `{"days":3,"interests":"x"}`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"error"`)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-weather", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, u.generateCalls.Load())
	assert.Zero(t, u.weatherCalls.Load())
}

func TestRouterWeather(t *testing.T) {
	u := newUpstreams(t)
	router := newTestRouter(t, u)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-weather?city=Kyoto", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Kyoto", body["name"])
	assert.EqualValues(t, 1, u.weatherCalls.Load())
}

func TestRouterSuggestTripsHTTPErrorIsNotRetried(t *testing.T) {
	u := newUpstreams(t)
	u.generateHandler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}
	router := newTestRouter(t, u)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/suggest-trips", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "503")
	assert.EqualValues(t, 1, u.generateCalls.Load())
}

func TestRouterPagesAndHealth(t *testing.T) {
	router := newTestRouter(t, newUpstreams(t))

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/", contentType: "text/html", contains: "itinerary-form"},
		{path: "/suggestions", contentType: "text/html", contains: "load-suggestions-btn"},
		{path: "/static/script.js", contentType: "javascript", contains: "generate-itinerary"},
		{path: "/health", contentType: "", contains: "OK"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tc.contentType)
			body, _ := io.ReadAll(rec.Body)
			assert.Contains(t, string(body), tc.contains)
		})
	}
}

func TestRouterCORS(t *testing.T) {
	router := newTestRouter(t, newUpstreams(t))

	req := httptest.NewRequest(http.MethodOptions, "/generate-itinerary", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
