package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"flight-offers-service/internal/domain"
	"flight-offers-service/internal/ports"
)

// AggregateOffers reshapes one raw flight-offer search response into the
// outbound-grouped presentation model.
//
// Offers are walked in upstream order. Each distinct outbound (identified by
// the multiset of its segments' carrierCode+carrierName pairs) produces one
// domain.Offer; further raw offers with the same outbound contribute only
// their inbound itinerary. Price and validating airline stick with the first
// offer seen per outbound.
func AggregateOffers(resp ports.OffersResponse) []domain.Offer {
	offers := make([]domain.Offer, 0, len(resp.Offers))
	// Outbound key -> position in offers, so grouping stays linear.
	byOutbound := make(map[string]int, len(resp.Offers))

	for _, raw := range resp.Offers {
		if len(raw.Itineraries) == 0 {
			continue
		}

		cabins := cabinBySegment(raw)
		key := outboundKey(raw.Itineraries[0], resp.Dictionaries)

		if pos, ok := byOutbound[key]; ok {
			if len(raw.Itineraries) > 1 {
				inbound := buildItinerary(raw.Itineraries[1], cabins, resp.Dictionaries)
				offers[pos].Inbound = append(offers[pos].Inbound, inbound)
			}
			continue
		}

		offer := domain.Offer{
			Outbound:          buildItinerary(raw.Itineraries[0], cabins, resp.Dictionaries),
			PriceFormatted:    FormatPrice(raw.Price.GrandTotal, raw.Price.Currency),
			ValidatingAirline: validatingAirline(raw, resp.Dictionaries),
		}
		if price, err := strconv.ParseFloat(raw.Price.GrandTotal, 64); err == nil {
			offer.Price = price
		}
		if len(raw.Itineraries) > 1 {
			inbound := buildItinerary(raw.Itineraries[1], cabins, resp.Dictionaries)
			offer.Inbound = append(offer.Inbound, inbound)
		}

		byOutbound[key] = len(offers)
		offers = append(offers, offer)
	}

	return offers
}

// outboundKey identifies "the same outbound flights": itineraries match when
// their carrierCode+carrierName multisets are equal and the same length.
func outboundKey(itin ports.RawItinerary, dict ports.Dictionaries) string {
	parts := make([]string, 0, len(itin.Segments))
	for _, seg := range itin.Segments {
		parts = append(parts, seg.CarrierCode+dict.Carriers[seg.CarrierCode])
	}
	sort.Strings(parts)

	return strconv.Itoa(len(parts)) + "|" + strings.Join(parts, "|")
}

func buildItinerary(itin ports.RawItinerary, cabins map[string]string, dict ports.Dictionaries) domain.Itinerary {
	segments := make([]domain.Segment, 0, len(itin.Segments))

	for i, raw := range itin.Segments {
		seg := domain.Segment{
			Origin:       raw.Departure.IATACode,
			Destination:  raw.Arrival.IATACode,
			DepartureAt:  raw.Departure.At,
			ArrivalAt:    raw.Arrival.At,
			CarrierCode:  raw.CarrierCode,
			CarrierName:  TitleCase(dict.Carriers[raw.CarrierCode]),
			FlightNumber: raw.CarrierCode + " " + raw.Number,
			Aircraft:     TitleCase(dict.Aircraft[raw.Aircraft.Code]),
			CabinClass:   cabins[raw.ID],
			Duration:     FormatDuration(raw.Duration),
		}

		if i > 0 {
			if layover, err := LayoverDuration(itin.Segments[i-1].Arrival.At, raw.Departure.At); err == nil {
				seg.Layover = layover
			}
		}

		segments = append(segments, seg)
	}

	out := domain.Itinerary{
		Duration: FormatDuration(itin.Duration),
		Stops:    stopsLabel(len(itin.Segments)),
		Segments: segments,
	}
	if len(segments) > 0 {
		out.DepartureAirport = segments[0].Origin
		out.DepartureTime = segments[0].DepartureAt
		out.ArrivalAirport = segments[len(segments)-1].Destination
		out.ArrivalTime = segments[len(segments)-1].ArrivalAt
	}

	return out
}

func stopsLabel(segmentCount int) string {
	stops := segmentCount - 1
	switch {
	case stops <= 0:
		return "Nonstop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// cabinBySegment flattens the first traveler's fare details into a
// segment-id -> cabin lookup.
func cabinBySegment(offer ports.RawOffer) map[string]string {
	if len(offer.TravelerPricings) == 0 {
		return nil
	}

	out := make(map[string]string, len(offer.TravelerPricings[0].FareDetailsBySegment))
	for _, fare := range offer.TravelerPricings[0].FareDetailsBySegment {
		out[fare.SegmentID] = fare.Cabin
	}
	return out
}

func validatingAirline(offer ports.RawOffer, dict ports.Dictionaries) string {
	if len(offer.ValidatingAirlineCodes) == 0 {
		return ""
	}

	code := offer.ValidatingAirlineCodes[0]
	if name, ok := dict.Carriers[code]; ok {
		return TitleCase(name)
	}
	return code
}
