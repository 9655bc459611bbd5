// Package json holds the relay's JSON response helper.
package json

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status. Encoding failures
// fall back to a bare 500 without overriding the status already committed.
func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
