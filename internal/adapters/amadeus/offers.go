package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"flight-offers-service/internal/platform/obs"
	"flight-offers-service/internal/ports"
)

type offersResponse struct {
	Data         []ports.RawOffer   `json:"data"`
	Dictionaries ports.Dictionaries `json:"dictionaries"`
}

// SearchFlightOffers runs a flight-offer search. ReturnDate may be empty for
// a one-way query.
func (c *Client) SearchFlightOffers(ctx context.Context, q ports.OffersQuery) (_ ports.OffersResponse, err error) {
	defer obs.Time(ctx, "amadeus.SearchFlightOffers")(&err)

	var decoded offersResponse
	err = c.gate.Do(ctx, func(ctx context.Context) error {
		query := url.Values{}
		query.Set("originLocationCode", q.Origin)
		query.Set("destinationLocationCode", q.Destination)
		query.Set("departureDate", q.DepartureDate)
		if q.ReturnDate != "" {
			query.Set("returnDate", q.ReturnDate)
		}
		query.Set("adults", q.Adults)
		query.Set("travelClass", q.TravelClass)
		if q.MaxResults > 0 {
			query.Set("max", strconv.Itoa(q.MaxResults))
		}

		return c.getJSON(ctx, "/v2/shopping/flight-offers", query, &decoded)
	})
	if err != nil {
		return ports.OffersResponse{}, fmt.Errorf("amadeus search flight offers: %w", err)
	}

	return ports.OffersResponse{
		Offers:       decoded.Data,
		Dictionaries: decoded.Dictionaries,
	}, nil
}
