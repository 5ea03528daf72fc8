package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/redact"
)

const serviceName = "Weather API"

// DefaultTimeout bounds a single lookup when the configuration leaves it unset.
const DefaultTimeout = 10 * time.Second

// Client fetches current weather from the OpenWeatherMap API.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the lookup timeout from the configuration.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Client from the weather configuration. A missing API
// key is reported by CurrentWeather, not here.
func NewClient(logger *slog.Logger, cfg config.WeatherConfig, opts ...ClientOption) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: weather base URL cannot be empty", domain.ErrInvalidConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid weather base URL: %v", domain.ErrInvalidConfig, err)
	}

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.RequestTimeout(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	return c, nil
}

// CurrentWeather returns the upstream JSON document for city in metric units.
func (c *Client) CurrentWeather(ctx context.Context, city string) (json.RawMessage, error) {
	if c.apiKey == "" {
		c.logger.ErrorContext(ctx, "Weather API key is not configured")
		return nil, &domain.ConfigError{Setting: "OPENWEATHER_API_KEY"}
	}

	u, err := url.Parse(c.baseURL + "/data/2.5/weather")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weather URL: %v", domain.ErrInvalidConfig, err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	c.logger.DebugContext(ctx, "Fetching weather", "city", city, "url", redact.URL(u))

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redact.String(urlErr.URL)
		}
		c.logger.ErrorContext(ctx, "Weather request failed", "city", city, "error", redact.Error(err))
		return nil, &domain.TransportError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{
			Service: serviceName,
			Err:     fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "HTTP error from Weather API",
			"city", city,
			"status", resp.StatusCode,
			"body", string(body))
		return nil, &domain.TransportError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Body:    string(body),
		}
	}

	if !json.Valid(body) {
		return nil, &domain.ParseError{Body: string(body)}
	}

	return json.RawMessage(body), nil
}
