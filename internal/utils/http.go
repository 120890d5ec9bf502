package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals payload and writes it with the given status code under
// an application/json content type, returning the number of body bytes
// written. When marshaling fails the response degrades to a plain 500 and
// the wrapped marshal error is returned; the handlers treat that as
// unrecoverable and do not attempt a second write.
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error occurred encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error occurred encoding response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
