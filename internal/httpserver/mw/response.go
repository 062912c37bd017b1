package mw

import (
	"encoding/json"
	"net/http"
)

// writeError answers in the API error shape without depending on handlers.
func writeError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": errorType, "message": message})
}
