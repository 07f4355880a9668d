package dto

// PriceResult renders as an empty object for pairs whose query failed, so the
// calendar grid always carries every date-pair key.
type PriceResult struct {
	Price          float64 `json:"price,omitempty"`
	PriceFormatted string  `json:"priceFormatted,omitempty"`
}

type DatePairsRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Adults      string   `json:"adults"`
	TravelClass string   `json:"travelClass"`
	DatePairs   []string `json:"datepairs"`
}
