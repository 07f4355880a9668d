package services

import (
	"testing"

	"flight-offers-service/internal/ports"
)

func rawItinerary(duration string, carriers ...string) ports.RawItinerary {
	itin := ports.RawItinerary{Duration: duration}
	for i, carrier := range carriers {
		itin.Segments = append(itin.Segments, ports.RawSegment{
			ID:          string(rune('1' + i)),
			Departure:   ports.RawEndpoint{IATACode: "AAA", At: "2024-06-10T08:00:00"},
			Arrival:     ports.RawEndpoint{IATACode: "BBB", At: "2024-06-10T10:00:00"},
			CarrierCode: carrier,
			Number:      "123",
			Duration:    "PT2H",
		})
	}
	return itin
}

func TestAggregateOffersMergesSharedOutbounds(t *testing.T) {
	resp := ports.OffersResponse{
		Offers: []ports.RawOffer{
			{
				Itineraries: []ports.RawItinerary{rawItinerary("PT2H", "LH"), rawItinerary("PT2H", "LH")},
				Price:       ports.RawPrice{Currency: "EUR", GrandTotal: "250.00"},
			},
			{
				Itineraries: []ports.RawItinerary{rawItinerary("PT2H", "LH"), rawItinerary("PT2H", "AF")},
				Price:       ports.RawPrice{Currency: "EUR", GrandTotal: "310.00"},
			},
		},
		Dictionaries: ports.Dictionaries{Carriers: map[string]string{"LH": "LUFTHANSA", "AF": "AIR FRANCE"}},
	}

	offers := AggregateOffers(resp)
	if len(offers) != 1 {
		t.Fatalf("got %d offers, want 1", len(offers))
	}
	if len(offers[0].Inbound) != 2 {
		t.Fatalf("got %d inbound itineraries, want 2", len(offers[0].Inbound))
	}

	// Shared fields come from the first offer seen for this outbound.
	if offers[0].Price != 250.00 {
		t.Fatalf("price = %v, want 250.00", offers[0].Price)
	}
	if offers[0].PriceFormatted != "250.00 EUR" {
		t.Fatalf("priceFormatted = %q, want %q", offers[0].PriceFormatted, "250.00 EUR")
	}
}

func TestAggregateOffersKeepsDistinctOutbounds(t *testing.T) {
	resp := ports.OffersResponse{
		Offers: []ports.RawOffer{
			{
				Itineraries: []ports.RawItinerary{rawItinerary("PT2H", "LH"), rawItinerary("PT2H", "LH")},
				Price:       ports.RawPrice{Currency: "EUR", GrandTotal: "250.00"},
			},
			{
				Itineraries: []ports.RawItinerary{rawItinerary("PT2H", "AF"), rawItinerary("PT2H", "AF")},
				Price:       ports.RawPrice{Currency: "EUR", GrandTotal: "199.00"},
			},
		},
		Dictionaries: ports.Dictionaries{Carriers: map[string]string{"LH": "LUFTHANSA", "AF": "AIR FRANCE"}},
	}

	offers := AggregateOffers(resp)
	if len(offers) != 2 {
		t.Fatalf("got %d offers, want 2", len(offers))
	}
	if len(offers[0].Inbound) != 1 || len(offers[1].Inbound) != 1 {
		t.Fatalf("inbound counts = %d/%d, want 1/1", len(offers[0].Inbound), len(offers[1].Inbound))
	}

	// First-seen upstream order is preserved.
	if offers[0].Price != 250.00 || offers[1].Price != 199.00 {
		t.Fatalf("prices = %v/%v, want 250.00/199.00", offers[0].Price, offers[1].Price)
	}
}

func TestAggregateOffersSegmentCountGuardsMerging(t *testing.T) {
	// Same carrier multiset prefix, different leg counts: must not merge.
	resp := ports.OffersResponse{
		Offers: []ports.RawOffer{
			{Itineraries: []ports.RawItinerary{rawItinerary("PT2H", "LH")}},
			{Itineraries: []ports.RawItinerary{rawItinerary("PT5H", "LH", "LH")}},
		},
		Dictionaries: ports.Dictionaries{Carriers: map[string]string{"LH": "LUFTHANSA"}},
	}

	if offers := AggregateOffers(resp); len(offers) != 2 {
		t.Fatalf("got %d offers, want 2", len(offers))
	}
}

func TestAggregateOffersEnrichment(t *testing.T) {
	offer := ports.RawOffer{
		Itineraries: []ports.RawItinerary{{
			Duration: "PT7H15M",
			Segments: []ports.RawSegment{
				{
					ID:          "1",
					Departure:   ports.RawEndpoint{IATACode: "JFK", At: "2024-06-10T08:15:00"},
					Arrival:     ports.RawEndpoint{IATACode: "ORD", At: "2024-06-10T10:20:00"},
					CarrierCode: "UA",
					Number:      "512",
					Aircraft:    ports.RawAircraft{Code: "738"},
					Duration:    "PT3H5M",
				},
				{
					ID:          "2",
					Departure:   ports.RawEndpoint{IATACode: "ORD", At: "2024-06-10T13:05:00"},
					Arrival:     ports.RawEndpoint{IATACode: "DEN", At: "2024-06-10T14:30:00"},
					CarrierCode: "UA",
					Number:      "774",
					Aircraft:    ports.RawAircraft{Code: "738"},
					Duration:    "PT2H25M",
				},
			},
		}},
		Price:                  ports.RawPrice{Currency: "USD", GrandTotal: "412.37"},
		ValidatingAirlineCodes: []string{"UA"},
		TravelerPricings: []ports.RawTravelerPricing{{
			FareDetailsBySegment: []ports.RawFareDetails{
				{SegmentID: "1", Cabin: "ECONOMY"},
				{SegmentID: "2", Cabin: "ECONOMY"},
			},
		}},
	}

	resp := ports.OffersResponse{
		Offers: []ports.RawOffer{offer},
		Dictionaries: ports.Dictionaries{
			Carriers: map[string]string{"UA": "UNITED AIRLINES"},
			Aircraft: map[string]string{"738": "BOEING 737-800"},
		},
	}

	offers := AggregateOffers(resp)
	if len(offers) != 1 {
		t.Fatalf("got %d offers, want 1", len(offers))
	}

	outbound := offers[0].Outbound
	if outbound.Stops != "1 stop" {
		t.Fatalf("stops = %q, want %q", outbound.Stops, "1 stop")
	}
	if outbound.Duration != "7 h 15 min" {
		t.Fatalf("duration = %q, want %q", outbound.Duration, "7 h 15 min")
	}
	if outbound.DepartureAirport != "JFK" || outbound.ArrivalAirport != "DEN" {
		t.Fatalf("summary airports = %q -> %q, want JFK -> DEN", outbound.DepartureAirport, outbound.ArrivalAirport)
	}
	if outbound.DepartureTime != "2024-06-10T08:15:00" || outbound.ArrivalTime != "2024-06-10T14:30:00" {
		t.Fatalf("summary times = %q / %q", outbound.DepartureTime, outbound.ArrivalTime)
	}

	first, second := outbound.Segments[0], outbound.Segments[1]
	if first.CarrierName != "United Airlines" {
		t.Fatalf("carrier name = %q, want %q", first.CarrierName, "United Airlines")
	}
	if first.Aircraft != "Boeing 737-800" {
		t.Fatalf("aircraft = %q, want %q", first.Aircraft, "Boeing 737-800")
	}
	if first.FlightNumber != "UA 512" {
		t.Fatalf("flight number = %q, want %q", first.FlightNumber, "UA 512")
	}
	if first.Layover != "" {
		t.Fatalf("first segment layover = %q, want empty", first.Layover)
	}
	if second.Layover != "2 h 45 min" {
		t.Fatalf("layover = %q, want %q", second.Layover, "2 h 45 min")
	}
	if second.CabinClass != "ECONOMY" {
		t.Fatalf("cabin = %q, want ECONOMY", second.CabinClass)
	}

	if offers[0].ValidatingAirline != "United Airlines" {
		t.Fatalf("validating airline = %q, want %q", offers[0].ValidatingAirline, "United Airlines")
	}
}

func TestStopsLabel(t *testing.T) {
	cases := []struct {
		segments int
		want     string
	}{
		{1, "Nonstop"},
		{2, "1 stop"},
		{3, "2 stops"},
	}

	for _, tc := range cases {
		if got := stopsLabel(tc.segments); got != tc.want {
			t.Fatalf("stopsLabel(%d) = %q, want %q", tc.segments, got, tc.want)
		}
	}
}
