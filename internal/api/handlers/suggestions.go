package handlers

import (
	"net/http"
	"strings"

	"flight-offers-service/internal/api/dto"
	"flight-offers-service/internal/ports"
)

// SuggestionHandler serves typeahead location suggestions.
type SuggestionHandler struct {
	Provider ports.FlightProvider
}

func (h *SuggestionHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if keyword == "" {
		writeError(w, r, http.StatusBadRequest, "keyword is required")
		return
	}

	locations, err := h.Provider.SearchLocations(r.Context(), keyword)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	res := make([]dto.LocationSuggestion, 0, len(locations))
	for _, loc := range locations {
		res = append(res, dto.LocationSuggestion{
			IATACode: loc.IATACode,
			Name:     loc.Name,
			CityName: loc.CityName,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
