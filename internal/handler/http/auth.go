// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles POST /api/auth/register. Responds 201 with the sanitized
// user; the verification mail is sent on a best-effort basis and never
// affects the outcome.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{ //nolint:errcheck
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
	}, http.StatusCreated)
}

// login handles POST /api/auth/login. On success the session token is
// returned in the body and additionally set as an HttpOnly cookie for
// browser clients.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
		return
	}

	token, user, err := h.services.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.App.SessionTokenDuration),
		HttpOnly: true,
		Secure:   h.cfg.App.Environment != "development",
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.LoginResponse{ //nolint:errcheck
		Token: token.SignedString,
		User:  user.Summary(),
	}, http.StatusOK)
}

// verifyEmail handles GET /api/auth/verify?token=... from the link embedded
// in the verification mail.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")

	if _, err := h.services.VerifyEmail(r.Context(), tokenString); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{ //nolint:errcheck
		Status:  "ok",
		Message: "email verified",
	}, http.StatusOK)
}

// me handles GET /api/auth/me for the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	user, err := h.services.CurrentUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{ //nolint:errcheck
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
	}, http.StatusOK)
}
