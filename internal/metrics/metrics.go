// Package metrics exposes board and API client statistics for Prometheus.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hirepaso"

// Metrics tracks board operations and outbound requests on its own registry
type Metrics struct {
	registry        *prometheus.Registry
	loads           *prometheus.CounterVec
	moves           *prometheus.CounterVec
	details         *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_loads_total",
			Help:      "Pipeline loads by result.",
		}, []string{"result"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_moves_total",
			Help:      "Application stage moves by result.",
		}, []string{"result"}),
		details: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detail_fetches_total",
			Help:      "Application detail fetches by result.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Recruiting API round trip duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "code"}),
	}

	m.registry.MustRegister(m.loads, m.moves, m.details, m.requestDuration)
	return m
}

// Registry returns the registry backing the /metrics handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveLoad(result string) {
	m.loads.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveMove(result string) {
	m.moves.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDetail(result string) {
	m.details.WithLabelValues(result).Inc()
}

// ObserveRequest records one HTTP round trip. Status 0 means a transport error.
func (m *Metrics) ObserveRequest(op string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requestDuration.WithLabelValues(op, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is cancelled
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("metrics endpoint listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
