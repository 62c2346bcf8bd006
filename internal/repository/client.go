package repository

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

	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/observability"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

const maxErrorBody = 4 << 10

// TokenSource yields the bearer token to attach to outgoing calls. An empty
// token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func() string

// Token calls f.
func (f TokenSourceFunc) Token() string { return f() }

type tokenSourceKey struct{}

// WithTokenSource returns a context whose API calls carry src's token.
func WithTokenSource(ctx context.Context, src TokenSource) context.Context {
	return context.WithValue(ctx, tokenSourceKey{}, src)
}

func tokenFrom(ctx context.Context) string {
	src, ok := ctx.Value(tokenSourceKey{}).(TokenSource)
	if !ok || src == nil {
		return ""
	}
	return src.Token()
}

// Client issues JSON calls against the remote BikeHub API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewClient builds a client for cfg.BaseURL.
func NewClient(cfg config.APIConfig, logger *zap.Logger, metrics *observability.Metrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
		metrics: metrics,
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Ping checks that the API answers at all. Any HTTP response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return util.NewUnavailable(err)
	}
	resp.Body.Close()
	return nil
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends one request. endpoint is the path template used for metrics;
// path is the concrete path. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, body, out any) error {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return util.NewInternalError(fmt.Errorf("encode %s %s: %w", method, endpoint, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return util.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordAPICall(endpoint, method, 0)
		c.logger.Warn("api call failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return util.NewUnavailable(err)
	}
	defer resp.Body.Close()

	c.metrics.RecordAPICall(endpoint, method, resp.StatusCode)
	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return util.NewInternalError(fmt.Errorf("decode %s %s: %w", method, endpoint, err))
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload apiError
	if err := json.Unmarshal(raw, &payload); err == nil {
		message := payload.Message
		if message == "" {
			message = payload.Error
		}
		return util.FromResponse(resp.StatusCode, payload.Code, message)
	}
	return util.FromResponse(resp.StatusCode, "", strings.TrimSpace(string(raw)))
}
