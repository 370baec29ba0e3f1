package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/hirepaso/internal/metrics"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	httpClient *http.Client
	profile    string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMetrics shares a metrics registry with the application
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithHTTPClient replaces the HTTP client used for the recruiting API
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithProfile selects the session profile
func WithProfile(profile string) Option {
	return func(cfg *appConfig) {
		if profile != "" {
			cfg.profile = profile
		}
	}
}
