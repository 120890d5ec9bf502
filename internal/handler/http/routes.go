package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

// publicRateLimit caps unauthenticated endpoints per client IP. The window
// is in-process and resets on restart.
const (
	publicRateLimit  = 100
	publicRateWindow = 60 // seconds
)

// InitRoutes assembles the chi router: trace id and request logging on
// everything, rate limiting on the unauthenticated group, session
// authentication on the rest.
func (h *Handler) InitRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.traceID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	if h.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK) //nolint:errcheck
	})

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(h.rateLimit)
			public.Post("/auth/register", h.register)
			public.Post("/auth/login", h.login)
			public.Get("/auth/verify", h.verifyEmail)
		})

		api.Group(func(private chi.Router) {
			private.Use(h.authenticate)
			private.Get("/auth/me", h.me)
			private.Post("/otp/enable", h.enableOTP)
			private.Post("/otp/verify", h.verifyOTP)
			private.Post("/otp/disable", h.disableOTP)
			private.Post("/email/test", h.sendTestEmail)
		})
	})

	return r
}
