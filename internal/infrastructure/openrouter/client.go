package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/ukrserhiy/litios/internal/domain/llm"
	"github.com/ukrserhiy/litios/internal/pkg/config"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// maxResponseBytes caps how much of an upstream answer is read.
const maxResponseBytes = 10 * 1024 * 1024

const completionsPath = "/chat/completions"

// Option customizes a client.
type Option func(*client)

// WithHTTPClient replaces the HTTP client used for upstream calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithBackOff replaces the retry schedule. The factory is called once per Complete call.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *client) {
		c.newBackOff = newBackOff
	}
}

type client struct {
	baseURL    string
	siteURL    string
	siteName   string
	maxRetries int
	httpClient *http.Client
	newBackOff func() backoff.BackOff
	logger     logger.Logger
}

// NewClient creates a new OpenRouter ChatClient
func NewClient(settings *config.OpenRouterSettings, logger logger.Logger, opts ...Option) (llm.ChatClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	c := &client{
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		siteURL:    settings.SiteURL,
		siteName:   settings.SiteName,
		maxRetries: settings.MaxRetries,
		httpClient: &http.Client{Timeout: settings.Timeout},
		newBackOff: defaultBackOff,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}

// Complete posts req to the chat completions endpoint using apiKey.
func (c *client) Complete(ctx context.Context, apiKey string, req *llm.ChatRequest) (json.RawMessage, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key not provided")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	startTime := time.Now()
	attempt := 0

	operation := func() (json.RawMessage, error) {
		attempt++

		status, body, err := c.post(ctx, apiKey, payload)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			c.logger.Warn("OpenRouter request attempt ", attempt, " failed: ", err)
			return nil, err
		}

		if status < 200 || status > 299 {
			upstreamErr := &llm.UpstreamError{StatusCode: status, Body: string(body)}
			if isRetryable(status) {
				c.logger.Warn("OpenRouter attempt ", attempt, " returned ", status)
				return nil, upstreamErr
			}
			return nil, backoff.Permanent(upstreamErr)
		}

		if !json.Valid(body) {
			return nil, backoff.Permanent(fmt.Errorf("upstream returned invalid JSON"))
		}
		return json.RawMessage(body), nil
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.maxRetries+1)),
	)
	if err != nil {
		var upstreamErr *llm.UpstreamError
		if !errors.As(err, &upstreamErr) {
			err = fmt.Errorf("request failed: %w", err)
		}
		c.logger.Error("OpenRouter call for model ", req.Model, " failed after ", attempt, " attempt(s): ", err)
		return nil, err
	}

	c.logger.Info("OpenRouter call for model ", req.Model, " completed in ", time.Since(startTime))
	return result, nil
}

func (c *client) post(ctx context.Context, apiKey string, payload []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	if c.siteURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.siteURL)
	}
	if c.siteName != "" {
		httpReq.Header.Set("X-Title", c.siteName)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
