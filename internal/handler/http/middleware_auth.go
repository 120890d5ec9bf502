package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

// authenticate guards the private route group. The session token is taken
// from the Authorization bearer header first, then from the session cookie.
// Any failure yields a generic 401; the reason is logged, not returned.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractSessionToken(r)
		if tokenString == "" {
			writeUnauthorized(w)
			return
		}

		token, err := h.services.ParseSessionToken(r.Context(), tokenString)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractSessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
			return token
		}
		return ""
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{ //nolint:errcheck
		Status:  "error",
		Message: "token is expired or invalid",
		Code:    "invalid_token",
	}, http.StatusUnauthorized)
}
