package dto

type LocationSuggestion struct {
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
	CityName string `json:"cityName"`
}
