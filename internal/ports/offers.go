package ports

// Raw upstream flight-offer payload, passed through to the aggregation layer
// unmodified. Field names and JSON tags mirror the upstream wire format so the
// adapter can decode straight into them.

// One flight-offer search result: the offer list plus the shared dictionaries
// mapping carrier and aircraft codes to display names.
type OffersResponse struct {
	Offers       []RawOffer
	Dictionaries Dictionaries
}

// One raw priced offer. A one-way search yields a single itinerary; a
// round-trip search yields an outbound itinerary followed by an inbound one.
type RawOffer struct {
	Itineraries            []RawItinerary       `json:"itineraries"`
	Price                  RawPrice             `json:"price"`
	ValidatingAirlineCodes []string             `json:"validatingAirlineCodes"`
	TravelerPricings       []RawTravelerPricing `json:"travelerPricings"`
}

type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

type RawSegment struct {
	ID          string      `json:"id"`
	Departure   RawEndpoint `json:"departure"`
	Arrival     RawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
	Aircraft    RawAircraft `json:"aircraft"`
	Duration    string      `json:"duration"`
}

// Airport plus ISO-8601 local timestamp for one end of a segment.
type RawEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type RawAircraft struct {
	Code string `json:"code"`
}

type RawPrice struct {
	Currency   string `json:"currency"`
	GrandTotal string `json:"grandTotal"`
}

type RawTravelerPricing struct {
	FareDetailsBySegment []RawFareDetails `json:"fareDetailsBySegment"`
}

// Cabin class per segment, keyed back to RawSegment.ID.
type RawFareDetails struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
	Aircraft map[string]string `json:"aircraft"`
}
