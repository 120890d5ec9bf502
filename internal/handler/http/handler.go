// Package http implements the REST surface of the auth service on top of
// chi. Handlers decode requests, delegate to the service layer, and render
// uniform JSON envelopes; every service sentinel is mapped to a status and a
// stable machine-readable code in one place.
package http

import (
	"time"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/service"
)

// sessionCookieName is the cookie carrying the session token for browser
// clients. API clients use the Authorization bearer header instead.
const sessionCookieName = "session"

// Handler carries the dependencies shared by all HTTP endpoints.
type Handler struct {
	services *service.Services
	cfg      *config.StructuredConfig
	limiter  *rateLimiter
	logger   *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		cfg:      cfg,
		limiter:  newRateLimiter(publicRateLimit, publicRateWindow*time.Second),
		logger:   log,
	}
}
