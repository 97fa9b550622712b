// Package web provides the HTTP server for the description and history
// endpoints.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/describe"
	"github.com/yourhome24/expose/internal/store"
	"github.com/yourhome24/expose/internal/web/middleware"
)

// Server represents the web server.
type Server struct {
	config     *config.Config
	service    *describe.Service
	store      store.Store
	router     *chi.Mux
	httpServer *http.Server
}

// NewServer creates a new web server. All dependencies are injected; the
// server owns no clients of its own.
func NewServer(cfg *config.Config, service *describe.Service, st store.Store) *Server {
	r := chi.NewRouter()

	s := &Server{
		config:  cfg,
		service: service,
		store:   st,
		router:  r,
	}

	// The Recoverer is the outermost boundary: any unexpected panic in a
	// handler becomes a 500 instead of crashing the caller.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(2 * time.Minute))
	r.Use(middleware.CORS())

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down web server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
