package domain

// Represents a single airport or city suggestion offered while the user types.
// Suggestions are derived one-to-one from upstream location records and live
// only for the request that produced them.
type LocationSuggestion struct {
	IATACode string
	Name     string
	CityName string
}
