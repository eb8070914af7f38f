// Package server exposes the palette generator over a small JSON HTTP
// API suitable for browser clients.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huegen/internal/store"
)

// Server hosts the palette API.
type Server struct {
	addr   string
	repo   store.Repository
	logger hclog.Logger
}

// New creates a Server listening on addr. repo may be nil, in which case
// the stored-palette endpoints respond 503.
func New(addr string, repo store.Repository, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{addr: addr, repo: repo, logger: logger.Named("server")}
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully with a timeout.
func (s *Server) Serve() error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownErr := make(chan error)
	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		sig := <-shutdown
		s.logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	s.logger.Info("listening", "addr", s.addr)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.logger.Info("stopped", "addr", s.addr)
	return nil
}

// routes builds the API mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/v1/schemes", s.handleSchemes)
	mux.HandleFunc("GET /api/v1/palette", s.handleGenerate)
	mux.HandleFunc("GET /api/v1/contrast", s.handleContrast)
	mux.HandleFunc("GET /api/v1/palettes", s.handleList)
	mux.HandleFunc("GET /api/v1/palettes/{name}", s.handleLoad)
	return s.withLogging(withCORS(mux))
}

// withLogging logs each request with method, path, status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// withCORS allows browser clients from any origin to call the read-only
// API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
