// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 120 * time.Second
)

// HTTPServer wraps net/http's server with the service's configuration and
// logging.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer builds the HTTP server for the given router.
func NewHTTPServer(cfg config.Server, router http.Handler, log *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: log,
	}
}

// Run starts the listener and blocks. A stop initiated via Shutdown returns
// nil; any other listener failure is returned as an error.
func (s *HTTPServer) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("http server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error occurred running http server: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, err)
	}

	return nil
}
