package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lavadevv/timeable-api/pkg/httpclient"
	"github.com/lavadevv/timeable-api/pkg/logger"
	"github.com/lavadevv/timeable-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"

	serviceName = "academic-api"

	// How much of a failing response body ends up in the error message
	maxErrorBodyBytes = 512
)

// StatusError is returned when the upstream responds with a non-2xx status.
// The raw body excerpt is kept for diagnostics only.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Client issues outbound calls against the academic-records system.
// It owns no retry or fallback policy; that belongs to the service layer.
type Client struct {
	http    httpclient.Client
	baseURL string
}

// NewClient creates an upstream client for the configured base URL
func NewClient(baseURL string, httpClient httpclient.Client) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PostForm sends a form-encoded POST without authorization (the login call)
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, path, "", contentTypeForm, strings.NewReader(form.Encode()))
}

// Post sends a body-less POST with the caller's token attached verbatim
// as the Authorization header (no Bearer prefix is added)
func (c *Client) Post(ctx context.Context, path, token string) ([]byte, error) {
	return c.do(ctx, path, token, "", nil)
}

// PostJSON sends a JSON POST with the caller's token attached verbatim
func (c *Client) PostJSON(ctx context.Context, path, token string, body any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, path, token, contentTypeJSON, bytes.NewReader(encoded))
}

func (c *Client) do(ctx context.Context, path, token, contentType string, body io.Reader) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.record(ctx, path, "error", start, zap.Error(err))
		return nil, fmt.Errorf("upstream request to %s failed: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(ctx, path, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to read upstream response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       excerpt(raw),
		}
		c.record(ctx, path, "error", start, zap.Int("status_code", resp.StatusCode))
		return nil, statusErr
	}

	c.record(ctx, path, "success", start, zap.Int("response_bytes", len(raw)))
	return raw, nil
}

func (c *Client) record(ctx context.Context, path, status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.UpstreamRequestDuration.WithLabelValues(path, status).Observe(duration)
	metrics.UpstreamRequestTotal.WithLabelValues(path, status).Inc()
	logger.LogAPICall(ctx, serviceName, path, status, duration, fields...)
}

func excerpt(raw []byte) string {
	if len(raw) > maxErrorBodyBytes {
		raw = raw[:maxErrorBodyBytes]
	}
	return string(raw)
}
