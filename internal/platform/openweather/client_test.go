package openweather

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/platform/logger"
	"github.com/phrazzld/travel-guide/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kyotoWeather = `{"name":"Kyoto","main":{"temp":18.2,"humidity":60},"weather":[{"description":"clear sky"}]}`

func newTestClient(t *testing.T, baseURL, apiKey string, opts ...ClientOption) (*Client, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.GetTestLogger(t)
	c, err := NewClient(log, config.WeatherConfig{
		APIKey:                apiKey,
		BaseURL:               baseURL,
		RequestTimeoutSeconds: 10,
	}, opts...)
	require.NoError(t, err)
	return c, buf
}

func TestCurrentWeatherRelaysBody(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(_ int, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Kyoto", r.URL.Query().Get("q"))
		assert.Equal(t, "weather-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(kyotoWeather))
	})
	c, buf := newTestClient(t, srv.URL, "weather-key")

	raw, err := c.CurrentWeather(context.Background(), "Kyoto")

	require.NoError(t, err)
	assert.Equal(t, kyotoWeather, string(raw))
	assert.Equal(t, 1, srv.Calls())
	logger.AssertLogNotContains(t, buf, "weather-key")
}

func TestCurrentWeatherEscapesCity(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(_ int, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "São Paulo&x=1", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{}`))
	})
	c, _ := newTestClient(t, srv.URL, "weather-key")

	_, err := c.CurrentWeather(context.Background(), "São Paulo&x=1")

	require.NoError(t, err)
}

func TestCurrentWeatherMissingKey(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(int, http.ResponseWriter, *http.Request) {})
	c, _ := newTestClient(t, srv.URL, "")

	_, err := c.CurrentWeather(context.Background(), "Kyoto")

	var configErr *domain.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "OPENWEATHER_API_KEY", configErr.Setting)
	assert.Zero(t, srv.Calls())
}

func TestCurrentWeatherHTTPErrorIsNotRetried(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(_ int, w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})
	c, _ := newTestClient(t, srv.URL, "weather-key")

	_, err := c.CurrentWeather(context.Background(), "Atlantis")

	require.Error(t, err)
	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusNotFound, transportErr.Status)
	assert.Contains(t, err.Error(), "city not found")
	assert.Equal(t, 1, srv.Calls())
}

func TestCurrentWeatherTimeout(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(_ int, _ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c, _ := newTestClient(t, srv.URL, "weather-key", WithTimeout(50*time.Millisecond))

	_, err := c.CurrentWeather(context.Background(), "Kyoto")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotContains(t, err.Error(), "weather-key")
	assert.Equal(t, 1, srv.Calls())
}

func TestCurrentWeatherInvalidJSON(t *testing.T) {
	srv := testutils.NewCountingServer(t, func(_ int, w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})
	c, _ := newTestClient(t, srv.URL, "weather-key")

	_, err := c.CurrentWeather(context.Background(), "Kyoto")

	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestNewClientValidation(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	_, err := NewClient(nil, config.WeatherConfig{BaseURL: "http://x"})
	require.Error(t, err)

	_, err = NewClient(log, config.WeatherConfig{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	c, err := NewClient(log, config.WeatherConfig{BaseURL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.timeout)
}
