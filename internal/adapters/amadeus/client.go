package amadeus

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"flight-offers-service/internal/platform/ratelimit"
)

const (
	testBaseURL       = "https://test.api.amadeus.com"
	productionBaseURL = "https://api.amadeus.com"
)

// Client implements FlightProvider against the Amadeus Self-Service API.
//
// It coordinates:
//   - OAuth2 client-credentials authentication with in-process token reuse
//   - Rate-gated dispatch of every upstream call
//   - Mapping of non-2xx responses to ports.UpstreamError
//
// The client never retries; pacing is the injected gate's job. It is safe for
// concurrent use.
type Client struct {
	session      *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	gate         *ratelimit.Gate

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient builds a client for the given environment ("production" selects
// the production quota profile and host, anything else the test host).
func NewClient(clientID, clientSecret, env string, gate *ratelimit.Gate) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("amadeus credentials are empty")
	}
	if gate == nil {
		return nil, errors.New("amadeus rate gate is nil")
	}

	baseURL := testBaseURL
	if env == "production" {
		baseURL = productionBaseURL
	}

	return &Client{
		session:      &http.Client{Timeout: 30 * time.Second},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		gate:         gate,
	}, nil
}
