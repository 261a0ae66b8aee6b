package middleware

import (
	"encoding/json"
	"net/http"
)

// errorResponse sends a minimal JSON error body. Middleware errors happen
// before the handlers' own helpers apply, so this stays self-contained.
func errorResponse(w http.ResponseWriter, status int, message any) {
	body, err := json.Marshal(map[string]any{"error": message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
