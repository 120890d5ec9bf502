// Package handler aggregates the transport-specific handler sets behind one
// constructor so cmd wiring stays flat.
package handler

import (
	"github.com/formit/auth-service/internal/config"
	httphandler "github.com/formit/auth-service/internal/handler/http"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/service"
)

// Handlers holds the transport handler sets. Only HTTP is served; the
// aggregate exists so an additional transport slots in without touching cmd.
type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers constructs every transport handler set from the shared service
// graph and configuration.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, log *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, cfg, log),
	}
}
