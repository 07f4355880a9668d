package domain

// Cheapest price found for one scanned date pair.
// The zero value marks a pair whose query failed; it renders as an empty
// object so the calendar grid keeps every key.
type PriceResult struct {
	Price          float64
	PriceFormatted string
}
