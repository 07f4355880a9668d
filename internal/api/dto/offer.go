package dto

type SegmentResponse struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepartureAt  string `json:"departureAt"`
	ArrivalAt    string `json:"arrivalAt"`
	CarrierCode  string `json:"carrierCode"`
	CarrierName  string `json:"carrierName"`
	FlightNumber string `json:"flightNumber"`
	Aircraft     string `json:"aircraft,omitempty"`
	CabinClass   string `json:"cabinClass,omitempty"`
	Duration     string `json:"duration"`
	Layover      string `json:"layover,omitempty"`
}

type ItineraryResponse struct {
	Duration         string            `json:"duration"`
	Stops            string            `json:"stops"`
	DepartureAirport string            `json:"departureAirport"`
	DepartureTime    string            `json:"departureTime"`
	ArrivalAirport   string            `json:"arrivalAirport"`
	ArrivalTime      string            `json:"arrivalTime"`
	Segments         []SegmentResponse `json:"segments"`
}

type OfferResponse struct {
	Outbound          ItineraryResponse   `json:"outbound"`
	Inbound           []ItineraryResponse `json:"inbound"`
	Price             float64             `json:"price"`
	PriceFormatted    string              `json:"priceFormatted"`
	ValidatingAirline string              `json:"validatingAirline"`
}
