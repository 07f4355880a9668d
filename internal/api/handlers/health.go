package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. It deliberately does not
// probe the upstream API: a probe would burn rate-gate quota on every check.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok", "service": "flight-offers"}
	writeJSON(w, r, http.StatusOK, res)
}
