package amadeus

import (
	"context"
	"fmt"
	"net/url"

	"flight-offers-service/internal/platform/obs"
	"flight-offers-service/internal/ports"
)

type locationsResponse struct {
	Data []struct {
		IATACode string `json:"iataCode"`
		Name     string `json:"name"`
		Address  struct {
			CityName string `json:"cityName"`
		} `json:"address"`
	} `json:"data"`
}

// SearchLocations looks up airport and city records matching a keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) (_ []ports.Location, err error) {
	defer obs.Time(ctx, "amadeus.SearchLocations")(&err)

	var decoded locationsResponse
	err = c.gate.Do(ctx, func(ctx context.Context) error {
		query := url.Values{}
		query.Set("subType", "AIRPORT,CITY")
		query.Set("keyword", keyword)

		return c.getJSON(ctx, "/v1/reference-data/locations", query, &decoded)
	})
	if err != nil {
		return nil, fmt.Errorf("amadeus search locations: %w", err)
	}

	out := make([]ports.Location, 0, len(decoded.Data))
	for _, record := range decoded.Data {
		out = append(out, ports.Location{
			IATACode: record.IATACode,
			Name:     record.Name,
			CityName: record.Address.CityName,
		})
	}

	return out, nil
}
