package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"flight-offers-service/internal/api/dto"
	"flight-offers-service/internal/domain"
	"flight-offers-service/internal/ports"
	"flight-offers-service/internal/services"
)

// ScanHandler serves calendar-style multi-date price scans.
type ScanHandler struct {
	Provider ports.FlightProvider
}

// CalendarView scans the 7x7 date grid around the pivot departure/return
// dates and returns a sparse price map with all 49 keys present.
func (h *ScanHandler) CalendarView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params := r.URL.Query()
	query := services.ScanQuery{
		Origin:      strings.TrimSpace(params.Get("origin")),
		Destination: strings.TrimSpace(params.Get("destination")),
		Adults:      defaultString(params.Get("adults"), defaultAdults),
		TravelClass: defaultString(params.Get("travelClass"), defaultTravelClass),
	}

	if query.Origin == "" || query.Destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	pairs, err := services.GenerateDatePairs(
		strings.TrimSpace(params.Get("departureDate")),
		strings.TrimSpace(params.Get("returnDate")),
	)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "departureDate and returnDate must be YYYY-MM-DD")
		return
	}

	results := services.ScanDatePairs(r.Context(), h.Provider, query, pairs)

	writeJSON(w, r, http.StatusOK, toPriceMap(results))
}

// ForDatePairs scans an explicit caller-supplied list of date pairs.
func (h *ScanHandler) ForDatePairs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DatePairsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	query := services.ScanQuery{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		Adults:      defaultString(req.Adults, defaultAdults),
		TravelClass: defaultString(req.TravelClass, defaultTravelClass),
	}

	results := services.ScanDatePairs(r.Context(), h.Provider, query, req.DatePairs)

	writeJSON(w, r, http.StatusOK, toPriceMap(results))
}

func toPriceMap(results map[string]domain.PriceResult) map[string]dto.PriceResult {
	out := make(map[string]dto.PriceResult, len(results))
	for pair, res := range results {
		out[pair] = dto.PriceResult{
			Price:          res.Price,
			PriceFormatted: res.PriceFormatted,
		}
	}
	return out
}
