package http

import (
	"errors"
	"net/http"

	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/internal/store"
	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

// errorMapping pairs an HTTP status with the stable machine-readable code
// clients are expected to switch on.
type errorMapping struct {
	status int
	code   string
}

// errorStatusMap translates service sentinels at the HTTP boundary. Order
// matters: the first errors.Is match wins.
var errorStatusMap = []struct {
	err     error
	mapping errorMapping
}{
	{service.ErrInvalidDataProvided, errorMapping{http.StatusBadRequest, "invalid_request"}},
	{service.ErrInvalidToken, errorMapping{http.StatusBadRequest, "invalid_token"}},
	{service.ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, "invalid_credentials"}},
	{service.ErrInvalidOTPCode, errorMapping{http.StatusUnauthorized, "invalid_otp_code"}},
	{service.ErrUserNotFound, errorMapping{http.StatusNotFound, "user_not_found"}},
	{store.ErrEmailAlreadyExists, errorMapping{http.StatusConflict, "email_already_exists"}},
	{service.ErrOTPAlreadyEnabled, errorMapping{http.StatusConflict, "otp_already_enabled"}},
	{service.ErrOTPNotEnabled, errorMapping{http.StatusPreconditionFailed, "otp_not_enabled"}},
	{service.ErrMailDelivery, errorMapping{http.StatusBadGateway, "mail_delivery_failed"}},
}

func mapError(err error) errorMapping {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.mapping
		}
	}

	return errorMapping{http.StatusInternalServerError, "internal_error"}
}

// writeError renders the uniform error envelope for err. Internal errors are
// logged with the original cause but reported to the client with a generic
// message outside development builds.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapping := mapError(err)

	message := err.Error()
	if mapping.status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		if h.cfg.App.Environment != "development" {
			message = "internal server error"
		}
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Int("status", mapping.status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{ //nolint:errcheck
		Status:  "error",
		Message: message,
		Code:    mapping.code,
	}, mapping.status)
}
