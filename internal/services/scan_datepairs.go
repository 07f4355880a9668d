package services

import (
	"context"
	"strconv"
	"sync"

	"flight-offers-service/internal/domain"
	"flight-offers-service/internal/platform/obs"
	"flight-offers-service/internal/ports"
)

type scanResult struct {
	pair   string
	result domain.PriceResult
}

// Route and traveler parameters shared by every query in one scan.
type ScanQuery struct {
	Origin      string
	Destination string
	Adults      string
	TravelClass string
}

// ScanDatePairs fires one minimal flight-offer query per date pair and joins
// on all of them. The returned map always holds every input pair: the cheapest
// price found on success, the zero PriceResult when that pair's query failed.
//
// Pacing is the provider's concern (every upstream call runs through the
// shared rate gate), so the fan-out here is unbounded. One pair failing never
// cancels or fails the others; the call returns only after all pairs settle.
func ScanDatePairs(ctx context.Context, provider ports.FlightProvider, query ScanQuery, pairs []string) map[string]domain.PriceResult {
	defer obs.Time(ctx, "services.ScanDatePairs")(nil)

	resultsCh := make(chan scanResult, len(pairs))
	var wg sync.WaitGroup

	for _, pair := range pairs {
		wg.Add(1)
		go func(pair string) {
			defer wg.Done()
			resultsCh <- scanResult{pair: pair, result: scanOnePair(ctx, provider, query, pair)}
		}(pair)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]domain.PriceResult, len(pairs))
	for res := range resultsCh {
		out[res.pair] = res.result
	}

	return out
}

// scanOnePair resolves a single date pair to its cheapest price. Any failure
// (malformed pair, upstream error, empty or unparsable result) collapses to
// the zero PriceResult placeholder.
func scanOnePair(ctx context.Context, provider ports.FlightProvider, query ScanQuery, pair string) domain.PriceResult {
	departureDate, returnDate, ok := SplitDatePair(pair)
	if !ok {
		return domain.PriceResult{}
	}

	resp, err := provider.SearchFlightOffers(ctx, ports.OffersQuery{
		Origin:        query.Origin,
		Destination:   query.Destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        query.Adults,
		TravelClass:   query.TravelClass,
		MaxResults:    1,
	})
	if err != nil || len(resp.Offers) == 0 {
		return domain.PriceResult{}
	}

	price := resp.Offers[0].Price
	amount, err := strconv.ParseFloat(price.GrandTotal, 64)
	if err != nil {
		return domain.PriceResult{}
	}

	return domain.PriceResult{
		Price:          amount,
		PriceFormatted: FormatPrice(price.GrandTotal, price.Currency),
	}
}
