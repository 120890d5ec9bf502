// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"time"
)

// statusRecorder captures the response status and body size for the request
// log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rec *statusRecorder) WriteHeader(statusCode int) {
	rec.status = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}

	size, err := rec.ResponseWriter.Write(b)
	rec.size += size

	return size, err
}

// requestLogger emits one structured log line per request with method, path,
// status, response size and duration.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		h.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", rec.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
