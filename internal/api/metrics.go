package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkwheel/internal/ui"
)

var (
	// MetricRequestsTotal counts API requests by endpoint and status
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwheel_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// MetricHarmoniesTotal counts generated harmony sequences by kind
	MetricHarmoniesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwheel_harmonies_total",
		Help: "Total harmony sequences generated by kind",
	}, []string{"kind"})

	// MetricPaletteOps counts palette store operations by type
	MetricPaletteOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwheel_palette_ops_total",
		Help: "Total palette store operations",
	}, []string{"op"})

	// MetricRequestDuration tracks API request duration
	MetricRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwheel_request_duration_seconds",
		Help:    "API request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	// MetricAuthFailures counts rejected authentication attempts
	MetricAuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwheel_auth_failures_total",
		Help: "Total rejected authentication attempts",
	})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
