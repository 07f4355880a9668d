package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"flight-offers-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeUpstreamError surfaces a failed upstream call as a 500 with the raw
// upstream error body; anything else collapses to a generic 500.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("upstream call failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))

	var upstream *ports.UpstreamError
	if !errors.As(err, &upstream) {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	body := map[string]any{"error": upstream.Body}
	if json.Valid([]byte(upstream.Body)) {
		body["error"] = json.RawMessage(upstream.Body)
	}
	writeJSON(w, r, http.StatusInternalServerError, body)
}
