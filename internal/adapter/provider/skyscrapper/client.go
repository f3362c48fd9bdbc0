// Package skyscrapper implements the flight search provider adapter.
// It queries a Sky Scrapper-style RapidAPI gateway and normalizes its
// itinerary response into domain Flight entities.
package skyscrapper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Sky Scrapper provider.
const ProviderName = "sky_scrapper"

const searchPath = "/api/v2/flights/searchFlights"

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the API gateway base URL
	BaseURL string

	// APIKey is the RapidAPI-style gateway key
	APIKey string

	// Currency, Market, and CountryCode are forwarded to the provider
	Currency    string
	Market      string
	CountryCode string

	// Timeout bounds a single HTTP call (default 5s)
	Timeout time.Duration
}

// Adapter is the Sky Scrapper flight provider.
type Adapter struct {
	cfg      Config
	client   *http.Client
	retryCfg retry.Config
}

// NewAdapter creates a flight provider adapter with the given config.
func NewAdapter(cfg Config) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return &Adapter{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		retryCfg: retry.ProviderConfig.WithRetryIf(retryable),
	}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider. Results keep the provider's order.
func (a *Adapter) Search(ctx context.Context, params domain.FlightSearchParams) ([]domain.Flight, error) {
	return retry.DoWithResult(ctx, func() ([]domain.Flight, error) {
		return a.search(ctx, params)
	}, a.retryCfg)
}

func (a *Adapter) search(ctx context.Context, params domain.FlightSearchParams) ([]domain.Flight, error) {
	q := url.Values{}
	q.Set("originSkyId", params.Origin)
	q.Set("destinationSkyId", params.Destination)
	q.Set("originEntityId", params.Origin)
	q.Set("destinationEntityId", params.Destination)
	q.Set("date", params.DepartureDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Passengers))
	q.Set("cabinClass", params.CabinClass)
	q.Set("currency", a.cfg.Currency)
	q.Set("market", a.cfg.Market)
	q.Set("countryCode", a.cfg.CountryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, err))
	}
	req.Header.Set("X-RapidAPI-Key", a.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err)))
	}
	if !body.Status {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, errors.New("provider reported failure status")))
	}

	return normalize(body.Data.Itineraries, a.cfg.Currency), nil
}

// checkStatus maps HTTP status codes to retryable or permanent errors.
// Server errors and rate limits are worth another attempt; other client
// errors are not.
func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 500 || code == http.StatusTooManyRequests:
		return domain.NewProviderUnavailableError(ProviderName)
	default:
		return retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("unexpected status %d", code)))
	}
}

// retryable is the retry predicate: permanent-wrapped errors stop the loop,
// everything else (network failures, 5xx) retries.
func retryable(err error) bool {
	return !retry.IsPermanent(err)
}

// Ensure interface is implemented.
var _ domain.FlightProvider = (*Adapter)(nil)
