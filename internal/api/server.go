package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/geoset/geoset/internal/log"
)

// Server represents the API server.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server bound to the given address.
func NewServer(configPath string, bindAddr string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:        bindAddr,
			Handler:     NewRouter(configPath),
			ReadTimeout: 15 * time.Second,
			// WriteTimeout must cover a full synchronous build run.
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start() error {
	log.Infof("API server listening on http://%s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the API server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("Shutting down API server...")
	return s.httpServer.Shutdown(ctx)
}
