package domain

// Represents one flight leg between two airports, enriched with display-ready
// carrier, aircraft, cabin and duration fields.
// Layover is the ground time before this segment, computed from the previous
// segment's arrival timestamp; it is empty on the first segment.
type Segment struct {
	Origin       string
	Destination  string
	DepartureAt  string
	ArrivalAt    string
	CarrierCode  string
	CarrierName  string
	FlightNumber string
	Aircraft     string
	CabinClass   string
	Duration     string
	Layover      string
}

// Represents one direction of travel (outbound or inbound) as an ordered
// sequence of segments, with summary fields taken from the first segment's
// departure and the last segment's arrival.
type Itinerary struct {
	Duration         string
	Stops            string
	DepartureAirport string
	DepartureTime    string
	ArrivalAirport   string
	ArrivalTime      string
	Segments         []Segment
}

// Represents one priced travel option: a single outbound itinerary plus every
// inbound itinerary the upstream offered for that same outbound.
// Price and validating airline come from the first upstream offer seen for
// this outbound.
type Offer struct {
	Outbound          Itinerary
	Inbound           []Itinerary
	Price             float64
	PriceFormatted    string
	ValidatingAirline string
}
