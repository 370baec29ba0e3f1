package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker/v2"

	"github.com/thenoetrevino/hirepaso/internal/config"
)

// Breaker wraps outbound calls with a circuit breaker. A nil *Breaker runs calls directly.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[[]byte]
}

// NewBreaker returns nil when the breaker is disabled
func NewBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *Breaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "recruiting-api",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"failure_threshold", cfg.FailureThreshold)
		},
		IsSuccessful: isBreakerSuccess,
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker[[]byte](settings)}
}

// isBreakerSuccess keeps caller-side failures (4xx, expired session, cancellation)
// from counting against the service
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.ClientError()
	}
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, context.Canceled)
}

// Execute runs fn under the breaker
func (b *Breaker) Execute(fn func() ([]byte, error)) ([]byte, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	body, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrServiceUnavailable
	}
	return body, err
}

// State returns the breaker state name, "disabled" when there is no breaker
func (b *Breaker) State() string {
	if b == nil || b.cb == nil {
		return "disabled"
	}
	return b.cb.State().String()
}

// IsHealthy returns true if the breaker is closed or disabled
func (b *Breaker) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}
