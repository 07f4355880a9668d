package ports

import "context"

// Parameters for a round-trip flight-offer search.
// Adults and TravelClass are passed through to the upstream verbatim.
// MaxResults caps the number of offers returned (0 means upstream default).
type OffersQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        string
	TravelClass   string
	MaxResults    int
}

// One raw location record from the upstream location search.
type Location struct {
	IATACode string
	Name     string
	CityName string
}

// Port: a boundary for querying the third-party flight-search API.
// Implementations must pace every call through the shared rate gate and must
// not retry on failure.
type FlightProvider interface {
	// Look up airport and city records matching a keyword.
	SearchLocations(ctx context.Context, keyword string) ([]Location, error)
	// Run a flight-offer search, returning raw offers plus the code
	// dictionaries needed to resolve display names.
	SearchFlightOffers(ctx context.Context, query OffersQuery) (OffersResponse, error)
}
