package api

import (
	"net/http"

	"flight-offers-service/internal/api/handlers"
	"flight-offers-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(provider ports.FlightProvider) http.Handler {
	mux := http.NewServeMux()

	suggestions := &handlers.SuggestionHandler{Provider: provider}
	offers := &handlers.OfferHandler{Provider: provider}
	scans := &handlers.ScanHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/search-suggestions", suggestions.Search)
	mux.HandleFunc("/get-flight-offers", offers.Search)
	mux.HandleFunc("/calendar-view", scans.CalendarView)
	mux.HandleFunc("/flights-for-datepairs", scans.ForDatePairs)

	return requestIDMiddleware(loggingMiddleware(mux))
}
