// Package api is the HTTP client for the recruiting portal's job/application service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/session"
)

const (
	headerRequestID = "X-Request-ID"
	refreshPath     = "/auth/refresh_token"
	maxBodySize     = 8 << 20
)

// RequestObserver receives one call per HTTP round trip
type RequestObserver interface {
	ObserveRequest(op string, status int, elapsed time.Duration)
}

type nopRequestObserver struct{}

func (nopRequestObserver) ObserveRequest(string, int, time.Duration) {}

// Client talks to the recruiting API on behalf of one session
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	session  *session.Session
	limiter  *rate.Limiter
	breaker  *Breaker
	logger   *slog.Logger
	observer RequestObserver

	// refreshMu serialises token refreshes so concurrent 401s refresh once
	refreshMu sync.Mutex
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the instrumented default client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithObserver(observer RequestObserver) Option {
	return func(c *Client) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// New creates a client for cfg. sess supplies and receives bearer tokens.
func New(cfg config.APIConfig, sess *session.Session, opts ...Option) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		session:  sess,
		limiter:  rate.NewLimiter(limit, burst),
		logger:   slog.Default(),
		observer: nopRequestObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = NewBreaker(cfg.CircuitBreaker, c.logger)

	return c
}

// BreakerState exposes the circuit breaker state for status output
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// request describes one API call
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do performs req and decodes a JSON response into out (if non-nil)
func (c *Client) do(ctx context.Context, req request, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.send(ctx, req)
	})
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.op, err)
	}
	return nil
}

// send runs one attempt and, on a 401, one refresh followed by one retry
func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	token := c.accessToken()

	status, body, err := c.roundTrip(ctx, req, token)
	if err != nil {
		return nil, err
	}
	if status != http.StatusUnauthorized || req.path == refreshPath {
		return checkStatus(req.op, status, body)
	}

	c.logger.Info("access token rejected, refreshing", "op", req.op)
	if err := c.refresh(ctx, token); err != nil {
		return nil, err
	}

	status, body, err = c.roundTrip(ctx, req, c.accessToken())
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.clearSession(ctx)
		return nil, ErrSessionExpired
	}
	return checkStatus(req.op, status, body)
}

func (c *Client) roundTrip(ctx context.Context, req request, token string) (int, []byte, error) {
	var payload io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		payload = bytes.NewReader(data)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observer.ObserveRequest(req.op, 0, time.Since(start))
		c.logger.Error("request failed", "op", req.op, "request_id", requestID, "error", err)
		return 0, nil, fmt.Errorf("%s: %w", req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	elapsed := time.Since(start)
	c.observer.ObserveRequest(req.op, resp.StatusCode, elapsed)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: read response: %w", req.op, err)
	}

	c.logger.Debug("request done",
		"op", req.op,
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", elapsed)

	return resp.StatusCode, body, nil
}

func checkStatus(op string, status int, body []byte) ([]byte, error) {
	if status < 200 || status >= 300 {
		return nil, newError(op, status, body)
	}
	return body, nil
}

func (c *Client) accessToken() string {
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken()
}

func (c *Client) clearSession(ctx context.Context) {
	if c.session == nil {
		return
	}
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Error("failed to clear session", "error", err)
	}
}
