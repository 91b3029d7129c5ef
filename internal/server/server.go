// Package server exposes the dry destinations over a small read-only HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/kedare/dryspot/internal/version"
)

const (
	// DefaultAddr is used when no listen address is configured.
	DefaultAddr = "127.0.0.1:8080"
	// ShutdownTimeout bounds how long in-flight requests may run after the context is cancelled.
	ShutdownTimeout = 15 * time.Second
)

// Server serves the destinations API.
type Server struct {
	provider destination.Provider
	addr     string
	srv      *http.Server
}

// New creates a server for provider listening on addr.
func New(provider destination.Provider, addr string) *Server {
	if provider == nil {
		provider = destination.NewStaticProvider()
	}

	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{provider: provider, addr: addr}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler builds the router with its middleware chain.
// Order: RequestID, RealIP, request logging, Recoverer.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(serverHeader(version.Get().UserAgent()))

	r.Get("/healthz", s.getHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/attributions", s.getAttributions)
		r.Get("/destinations", s.getDestinations)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Log.Infof("Serving dry destinations on http://%s", ln.Addr())

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	logger.Log.Infof("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Log.Debugf("Server stopped")

	return nil
}
