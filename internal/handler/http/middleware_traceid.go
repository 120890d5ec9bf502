package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-Id"

// traceID assigns every request a trace id, echoes it in the response header
// and attaches a request-scoped logger carrying it to the context, so that
// logger.FromContext and logger.FromRequest downstream correlate log lines.
func (h *Handler) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		requestLogger := h.logger.With().Str("trace_id", id).Logger()
		ctx := requestLogger.WithContext(r.Context())

		w.Header().Set(traceIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
