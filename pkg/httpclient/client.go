// Package httpclient provides the rate limited JSON client shared by the
// upstream provider adapters.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kanzfinance/kanz-middleware/internal/metrics"
)

const maxResponseBytes = 4 << 20

// Config holds the configuration for the HTTP client.
type Config struct {
	// Provider labels logs and metrics, e.g. "lifi".
	Provider          string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Request describes one outbound call.
type Request struct {
	// Operation labels logs and metrics, e.g. "quote".
	Operation string
	Method    string
	URL       string
	Query     url.Values
	Headers   map[string]string
	// Body is JSON encoded when non-nil.
	Body any
}

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
}

// ErrorBody returns the upstream response body carried by err, if any.
func ErrorBody(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return err.Error()
}

// Client wraps an HTTP client with rate limiting, logging and metrics.
type Client struct {
	provider   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// New creates a new client. A non-positive RequestsPerSecond disables limiting.
func New(cfg Config, logger *zap.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		provider:   cfg.Provider,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger.With(zap.String("provider", cfg.Provider)),
	}
}

// Do performs req and decodes a 2xx JSON response into result when result is
// non-nil. Non-2xx responses return *StatusError.
func (c *Client) Do(ctx context.Context, req Request, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	status, err := c.do(ctx, req, result)
	metrics.UpstreamDuration.WithLabelValues(c.provider, req.Operation).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequests.WithLabelValues(c.provider, req.Operation, status).Inc()

	c.logger.Debug("upstream request",
		zap.String("operation", req.Operation),
		zap.String("method", req.Method),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)
	return err
}

func (c *Client) do(ctx context.Context, req Request, result any) (string, error) {
	fullURL := req.URL
	if len(req.Query) > 0 {
		fullURL = fmt.Sprintf("%s?%s", req.URL, req.Query.Encode())
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return "error", fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return "error", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "error", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	status := strconv.Itoa(resp.StatusCode)
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return status, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return status, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result == nil {
		return status, nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return status, fmt.Errorf("parsing response: %w", err)
	}
	return status, nil
}
