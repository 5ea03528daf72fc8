package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/domain"
	"github.com/phrazzld/travel-guide/internal/generation"
	"github.com/phrazzld/travel-guide/internal/redact"
	"github.com/sethvargo/go-retry"
)

// Client implements generation.Generator against the generateContent REST endpoint.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// httpClient sends the requests; per-attempt timeouts come from the request context
	httpClient *http.Client

	// baseURL is the versioned API root, e.g. https://generativelanguage.googleapis.com/v1
	baseURL string

	// defaults are applied to every Generate call before per-call options
	defaults generation.Options

	timeout        time.Duration
	initialBackoff time.Duration
	maxJitter      time.Duration
}

var _ generation.Generator = (*Client)(nil)

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestTimeout overrides the per-attempt timeout from the configuration.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithBackoff overrides the initial backoff and the jitter bound from the configuration.
func WithBackoff(initial, maxJitter time.Duration) ClientOption {
	return func(c *Client) {
		c.initialBackoff = initial
		c.maxJitter = maxJitter
	}
}

// NewClient creates a Client from the LLM configuration.
//
// A missing API key is not an error here; Generate reports it as a
// *domain.ConfigError so the failure surfaces on the request that needs it.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...ClientOption) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", domain.ErrInvalidConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", domain.ErrInvalidConfig, err)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", domain.ErrInvalidConfig)
	}

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		defaults: generation.Options{
			Model:           cfg.ModelName,
			APIKey:          cfg.GeminiAPIKey,
			MaxOutputTokens: cfg.MaxOutputTokens,
			MaxAttempts:     cfg.MaxAttempts,
		},
		timeout:        cfg.RequestTimeout(),
		initialBackoff: cfg.InitialBackoff(),
		maxJitter:      cfg.MaxJitter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout <= 0 {
		c.timeout = 120 * time.Second
	}

	return c, nil
}

// Generate submits prompt as a single user-role message and returns the generated text.
//
// Attempts are bounded by the resolved MaxAttempts. A non-2xx response ends the
// call at once with a *domain.TransportError carrying the status and body. Any
// other failure is retried after an exponentially growing, jittered delay until
// the attempt budget is spent, and the last failure is returned.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...generation.Option) (string, error) {
	o := generation.Resolve(c.defaults, opts...)

	if o.APIKey == "" {
		c.logger.ErrorContext(ctx, "Generative API key is not configured")
		return "", &domain.ConfigError{Setting: "GOOGLE_API_KEY"}
	}

	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	endpoint, err := c.endpoint(o.Model, o.APIKey)
	if err != nil {
		return "", err
	}
	logURL := redact.URL(endpoint)

	body, err := json.Marshal(newRequest(prompt, o.MaxOutputTokens))
	if err != nil {
		return "", fmt.Errorf("failed to encode generateContent request: %w", err)
	}

	backoff := retry.WithMaxRetries(
		uint64(o.MaxAttempts-1),
		withSleepHook(
			exponentialJitter(c.initialBackoff, c.maxJitter, rand.Float64),
			func(d time.Duration) {
				c.logger.InfoContext(ctx, "Sleeping before retry",
					"delay_seconds", d.Seconds())
			},
		),
	)

	attempt := 0
	var text string

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		c.logger.InfoContext(ctx, "Generative API attempt",
			"attempt", attempt,
			"max_attempts", o.MaxAttempts,
			"url", logURL)

		result, err := c.send(ctx, endpoint.String(), body)
		if err == nil {
			text = result
			return nil
		}

		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) && transportErr.Status > 0 {
			c.logger.ErrorContext(ctx, "HTTP error from Generative API",
				"status", transportErr.Status,
				"body", transportErr.Body)
			return err
		}

		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			c.logger.ErrorContext(ctx, "Could not extract text from response",
				"attempt", attempt,
				"body", parseErr.Body)
		} else {
			c.logger.ErrorContext(ctx, "Unexpected error calling Generative API",
				"attempt", attempt,
				"error", redact.Error(err))
		}

		if ctx.Err() != nil || !domain.Retryable(err) {
			return err
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Generative API call successful",
		"attempt", attempt,
		"text_length", len(text))

	return text, nil
}

// send performs one generateContent exchange.
func (c *Client) send(ctx context.Context, endpoint string, body []byte) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generateContent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.TransportError{Service: serviceName, Err: scrubURLError(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.TransportError{
			Service: serviceName,
			Err:     fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.TransportError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Body:    string(raw),
		}
	}

	return ExtractText(raw)
}

// endpoint builds {base}/{model}:generateContent?key={apiKey}.
// A bare model ID such as "gemini-2.5-flash" is qualified with "models/".
func (c *Client) endpoint(model, apiKey string) (*url.URL, error) {
	model = strings.Trim(strings.TrimSpace(model), "/")
	if model == "" {
		return nil, &domain.ConfigError{Setting: "MODEL_NAME"}
	}
	if !strings.Contains(model, "/") {
		model = "models/" + model
	}

	u, err := url.Parse(c.baseURL + "/" + model + ":generateContent")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid generateContent URL: %v", domain.ErrInvalidConfig, err)
	}

	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	return u, nil
}

func newRequest(prompt string, maxOutputTokens int) generateContentRequest {
	return generateContentRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt}},
			},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     generation.Temperature,
		},
	}
}

// scrubURLError strips the API key from the URL that net/http embeds in its errors.
func scrubURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redact.String(urlErr.URL)
	}
	return err
}
