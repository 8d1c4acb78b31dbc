// Package api exposes the color core and palette store over JSON HTTP.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"inkwheel/internal/auth"
	"inkwheel/internal/config"
	"inkwheel/internal/palette"
	"inkwheel/internal/ui"
)

// Server serves the inkwheel JSON API
type Server struct {
	Config    *config.Config
	Store     palette.Store
	UserStore *auth.UserStore

	httpServer *http.Server
	ln         net.Listener
}

// NewServer creates a new API server. userStore may be nil, in which
// case mutating endpoints are open (development mode).
func NewServer(cfg *config.Config, store palette.Store, userStore *auth.UserStore) *Server {
	return &Server{
		Config:    cfg,
		Store:     store,
		UserStore: userStore,
	}
}

// Addr returns the bound listen address once Start has been called.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// routes builds the request mux
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/harmony", s.instrument("harmony", s.handleHarmony))
	mux.HandleFunc("/api/mix", s.instrument("mix", s.handleMix))
	mux.HandleFunc("/api/convert", s.instrument("convert", s.handleConvert))
	mux.HandleFunc("/api/palettes", s.instrument("palettes", s.handlePalettes))
	mux.HandleFunc("/api/palettes/", s.instrument("palette", s.handlePalette))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// instrument wraps a handler with CORS headers, metrics and request
// logging.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		w.Header().Set("Access-Control-Allow-Origin", s.Config.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		elapsed := time.Since(start)
		MetricRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", rec.status)).Inc()
		MetricRequestDuration.Observe(elapsed.Seconds())

		if s.Config.Env.Debug {
			ui.LogRequest(r.Method, r.URL.Path, rec.status, elapsed)
		}
	}
}

// statusRecorder captures the response status for logging and metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Start begins serving the API. It blocks until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	var err error
	s.ln, err = net.Listen("tcp", s.Config.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Config.Listen, err)
	}

	timeout := time.Duration(s.Config.TimeoutSec) * time.Second
	s.httpServer = &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	ui.LogStatus("info", "API listening on "+s.ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if serveErr := s.httpServer.Serve(s.ln); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case serveErr := <-errCh:
		return serveErr
	}
}
