package handlers

import (
	"net/http"
	"strings"

	"flight-offers-service/internal/api/dto"
	"flight-offers-service/internal/domain"
	"flight-offers-service/internal/ports"
	"flight-offers-service/internal/services"
)

const (
	defaultAdults      = "1"
	defaultTravelClass = "ECONOMY"
)

// OfferHandler serves outbound-grouped round-trip flight offers.
type OfferHandler struct {
	Provider ports.FlightProvider
}

func (h *OfferHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params := r.URL.Query()
	query := ports.OffersQuery{
		Origin:        strings.TrimSpace(params.Get("origin")),
		Destination:   strings.TrimSpace(params.Get("destination")),
		DepartureDate: strings.TrimSpace(params.Get("departureDate")),
		ReturnDate:    strings.TrimSpace(params.Get("returnDate")),
		Adults:        defaultString(params.Get("adults"), defaultAdults),
		TravelClass:   defaultString(params.Get("travelClass"), defaultTravelClass),
	}

	if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" || query.ReturnDate == "" {
		writeError(w, r, http.StatusBadRequest, "origin, destination, departureDate and returnDate are required")
		return
	}

	resp, err := h.Provider.SearchFlightOffers(r.Context(), query)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	offers := services.AggregateOffers(resp)

	res := make([]dto.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		res = append(res, toOfferResponse(offer))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func toOfferResponse(offer domain.Offer) dto.OfferResponse {
	inbound := make([]dto.ItineraryResponse, 0, len(offer.Inbound))
	for _, itin := range offer.Inbound {
		inbound = append(inbound, toItineraryResponse(itin))
	}

	return dto.OfferResponse{
		Outbound:          toItineraryResponse(offer.Outbound),
		Inbound:           inbound,
		Price:             offer.Price,
		PriceFormatted:    offer.PriceFormatted,
		ValidatingAirline: offer.ValidatingAirline,
	}
}

func toItineraryResponse(itin domain.Itinerary) dto.ItineraryResponse {
	segments := make([]dto.SegmentResponse, 0, len(itin.Segments))
	for _, seg := range itin.Segments {
		segments = append(segments, dto.SegmentResponse{
			Origin:       seg.Origin,
			Destination:  seg.Destination,
			DepartureAt:  seg.DepartureAt,
			ArrivalAt:    seg.ArrivalAt,
			CarrierCode:  seg.CarrierCode,
			CarrierName:  seg.CarrierName,
			FlightNumber: seg.FlightNumber,
			Aircraft:     seg.Aircraft,
			CabinClass:   seg.CabinClass,
			Duration:     seg.Duration,
			Layover:      seg.Layover,
		})
	}

	return dto.ItineraryResponse{
		Duration:         itin.Duration,
		Stops:            itin.Stops,
		DepartureAirport: itin.DepartureAirport,
		DepartureTime:    itin.DepartureTime,
		ArrivalAirport:   itin.ArrivalAirport,
		ArrivalTime:      itin.ArrivalTime,
		Segments:         segments,
	}
}
