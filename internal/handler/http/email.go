package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

type sendTestEmailRequest struct {
	Email string `json:"email"`
}

// sendTestEmail handles POST /api/email/test, an operational check that the
// SMTP transport is reachable and accepts mail.
func (h *Handler) sendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req sendTestEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
		return
	}

	if err := h.services.SendTestEmail(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{ //nolint:errcheck
		Status:  "ok",
		Message: "test email sent",
	}, http.StatusOK)
}
