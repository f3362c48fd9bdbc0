// Package bookingcom implements the hotel search provider adapter.
// It queries a Booking.com-style RapidAPI gateway: destinations are
// resolved to a dest_id first, then properties are searched and
// normalized into domain Hotel entities.
package bookingcom

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

// ProviderName is the unique identifier for the Booking.com provider.
const ProviderName = "booking_com"

const (
	destinationPath = "/api/v1/hotels/searchDestination"
	searchPath      = "/api/v1/hotels/searchHotels"
)

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the API gateway base URL
	BaseURL string

	// APIKey is the RapidAPI-style gateway key
	APIKey string

	// Currency and Language are forwarded to the provider
	Currency string
	Language string

	// Timeout bounds a single HTTP call (default 5s)
	Timeout time.Duration
}

// Adapter is the Booking.com hotel provider.
type Adapter struct {
	cfg      Config
	client   *http.Client
	retryCfg retry.Config
}

// NewAdapter creates a hotel provider adapter with the given config.
func NewAdapter(cfg Config) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.Language == "" {
		cfg.Language = "en-us"
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

// Search implements domain.HotelProvider. The destination string is
// resolved to a provider dest_id before the property search runs.
func (a *Adapter) Search(ctx context.Context, params domain.HotelSearchParams) ([]domain.Hotel, error) {
	return retry.DoWithResult(ctx, func() ([]domain.Hotel, error) {
		destID, err := a.resolveDestination(ctx, params.Destination)
		if err != nil {
			return nil, err
		}
		return a.search(ctx, destID, params)
	}, a.retryCfg)
}

// resolveDestination returns the dest_id of the first city match for
// the given destination name.
func (a *Adapter) resolveDestination(ctx context.Context, destination string) (string, error) {
	q := url.Values{}
	q.Set("query", destination)

	var body destinationResponse
	if err := a.get(ctx, destinationPath, q, &body); err != nil {
		return "", err
	}
	if !body.Status || len(body.Data) == 0 {
		return "", retry.NewPermanent(domain.NewProviderError(ProviderName,
			fmt.Errorf("no destination match for %q", destination)))
	}
	return body.Data[0].DestID, nil
}

func (a *Adapter) search(ctx context.Context, destID string, params domain.HotelSearchParams) ([]domain.Hotel, error) {
	page := params.PageNumber
	if page <= 0 {
		page = 1
	}

	q := url.Values{}
	q.Set("dest_id", destID)
	q.Set("search_type", "CITY")
	q.Set("arrival_date", params.CheckIn)
	q.Set("departure_date", params.CheckOut)
	q.Set("adults", strconv.Itoa(params.Guests))
	q.Set("room_qty", strconv.Itoa(params.Rooms))
	q.Set("page_number", strconv.Itoa(page))
	q.Set("currency_code", a.cfg.Currency)
	q.Set("languagecode", a.cfg.Language)
	if params.SortBy != "" {
		q.Set("order_by", params.SortBy)
	}
	if params.PriceMin != nil && params.PriceMax != nil {
		q.Set("price_filter_currencycode", a.cfg.Currency)
		q.Set("nflt", fmt.Sprintf("price-%s-%d-%d-1",
			a.cfg.Currency, int(*params.PriceMin), int(*params.PriceMax)))
	}

	var body searchResponse
	if err := a.get(ctx, searchPath, q, &body); err != nil {
		return nil, err
	}
	if !body.Status {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, errors.New("provider reported failure status")))
	}

	return a.normalize(body.Data.Hotels, params), nil
}

// get performs one gateway call and decodes the JSON body into out.
func (a *Adapter) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return retry.NewPermanent(domain.NewProviderError(ProviderName, err))
	}
	req.Header.Set("X-RapidAPI-Key", a.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err)))
	}
	return nil
}

// checkStatus maps HTTP status codes to retryable or permanent errors.
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

func retryable(err error) bool {
	return !retry.IsPermanent(err)
}

// Ensure interface is implemented.
var _ domain.HotelProvider = (*Adapter)(nil)
