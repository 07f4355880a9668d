package amadeus

import (
	"context"
	"fmt"
	"sync"

	"flight-offers-service/internal/ports"
)

// Canned price for one departure/return date combination.
type MockOffer struct {
	DepartureDate string
	ReturnDate    string
	GrandTotal    string
	Currency      string
}

// MockProvider serves canned results for tests. Lookups with no canned entry
// fail, which makes partial-failure scenarios easy to stage.
type MockProvider struct {
	locations map[string][]ports.Location
	offers    map[string]ports.RawPrice

	mu         sync.Mutex
	offerCalls int
}

func NewMockProvider(locations map[string][]ports.Location, offers []MockOffer) *MockProvider {
	m := make(map[string]ports.RawPrice, len(offers))
	for _, o := range offers {
		m[o.DepartureDate+"|"+o.ReturnDate] = ports.RawPrice{
			Currency:   o.Currency,
			GrandTotal: o.GrandTotal,
		}
	}

	return &MockProvider{locations: locations, offers: m}
}

func (p *MockProvider) SearchLocations(ctx context.Context, keyword string) ([]ports.Location, error) {
	records, ok := p.locations[keyword]
	if !ok {
		return nil, fmt.Errorf("no canned locations for %q", keyword)
	}

	return records, nil
}

func (p *MockProvider) SearchFlightOffers(ctx context.Context, q ports.OffersQuery) (ports.OffersResponse, error) {
	p.mu.Lock()
	p.offerCalls++
	p.mu.Unlock()

	price, ok := p.offers[q.DepartureDate+"|"+q.ReturnDate]
	if !ok {
		return ports.OffersResponse{}, fmt.Errorf("no canned offer for %q -> %q", q.DepartureDate, q.ReturnDate)
	}

	return ports.OffersResponse{
		Offers: []ports.RawOffer{{Price: price}},
	}, nil
}

// OfferCalls reports how many flight-offer queries settled, successfully or
// not.
func (p *MockProvider) OfferCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offerCalls
}
