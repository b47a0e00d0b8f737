// Package server exposes the ticket engine over HTTP for ad-hoc analysis.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tacctile/handicap-app-sub002/internal/analyzers"
	"github.com/tacctile/handicap-app-sub002/internal/engine"
	"github.com/tacctile/handicap-app-sub002/internal/recorder"
)

// Server wraps the HTTP listener around the engine handler.
type Server struct {
	http *http.Server
}

// New builds the router and server on the given port.
func New(port int, runner *analyzers.Runner, rec recorder.Recorder, opts engine.Options) *Server {
	h := NewHandler(runner, rec, opts)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Post("/api/v1/analyze", h.Analyze)

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] http server listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] http server: %v", err)
		}
	}()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
