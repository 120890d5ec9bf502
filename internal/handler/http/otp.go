package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

type otpCodeRequest struct {
	Code string `json:"code"`
}

// enableOTP handles POST /api/otp/enable. The generated secret is disclosed
// in this response only.
func (h *Handler) enableOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	enrollment, err := h.services.Enable(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, enrollment, http.StatusOK) //nolint:errcheck
}

// verifyOTP handles POST /api/otp/verify. A wrong code yields 200 with
// valid=false, not an error status.
func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req otpCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
		return
	}

	valid, err := h.services.Verify(r.Context(), userID, req.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyOTPResponse{Valid: valid}, http.StatusOK) //nolint:errcheck
}

// disableOTP handles POST /api/otp/disable. A valid current code is required
// as proof the caller still controls the authenticator.
func (h *Handler) disableOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req otpCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
		return
	}

	if err := h.services.Disable(r.Context(), userID, req.Code); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{ //nolint:errcheck
		Status:  "ok",
		Message: "otp disabled",
	}, http.StatusOK)
}
