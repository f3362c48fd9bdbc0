package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/logger"
)

// ErrStaleResult indicates a newer search for the same session and domain
// already delivered; the caller must discard this response.
var ErrStaleResult = errors.New("stale search result discarded")

// SearchService is the inbound port for travel searches.
type SearchService interface {
	SearchFlights(ctx context.Context, sessionID string, params domain.FlightSearchParams) (*domain.SearchResult[domain.Flight], error)
	SearchHotels(ctx context.Context, sessionID string, params domain.HotelSearchParams) (*domain.SearchResult[domain.Hotel], error)
	SearchActivities(ctx context.Context, sessionID string, params domain.ActivitySearchParams) (*domain.SearchResult[domain.Activity], error)
	ActivityCategories() []domain.Category
}

// Fallbacks supplies the curated per-domain sample sets substituted when a
// provider cannot deliver. They are parameterized by the search request so
// endpoints and dates echo what was asked for.
type Fallbacks struct {
	Flights    func(domain.FlightSearchParams) []domain.Flight
	Hotels     func(domain.HotelSearchParams) []domain.Hotel
	Activities func(domain.ActivitySearchParams) []domain.Activity
}

// SearchUsecase runs provider-backed searches with a per-provider timeout
// and an explicit fallback policy: a provider failure yields the curated
// fallback set tagged with the failure reason, never a silent substitution.
type SearchUsecase struct {
	flights    domain.FlightProvider
	hotels     domain.HotelProvider
	activities domain.ActivityProvider
	fallbacks  Fallbacks
	tracker    *SequenceTracker
	timeout    time.Duration
	log        *logger.Logger
}

// NewSearchUsecase creates the search service. timeout bounds each provider
// call; zero means 5s.
func NewSearchUsecase(
	flights domain.FlightProvider,
	hotels domain.HotelProvider,
	activities domain.ActivityProvider,
	fallbacks Fallbacks,
	timeout time.Duration,
	log *logger.Logger,
) *SearchUsecase {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SearchUsecase{
		flights:    flights,
		hotels:     hotels,
		activities: activities,
		fallbacks:  fallbacks,
		tracker:    NewSequenceTracker(),
		timeout:    timeout,
		log:        log,
	}
}

// SearchFlights validates the request and queries the flight provider.
func (u *SearchUsecase) SearchFlights(ctx context.Context, sessionID string, params domain.FlightSearchParams) (*domain.SearchResult[domain.Flight], error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return run(u, ctx, sessionID, domain.ItemTypeFlight, u.flights.Name(),
		func(ctx context.Context) ([]domain.Flight, error) {
			return u.flights.Search(ctx, params)
		},
		func() []domain.Flight { return u.fallbacks.Flights(params) },
	)
}

// SearchHotels validates the request and queries the hotel provider.
func (u *SearchUsecase) SearchHotels(ctx context.Context, sessionID string, params domain.HotelSearchParams) (*domain.SearchResult[domain.Hotel], error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return run(u, ctx, sessionID, domain.ItemTypeHotel, u.hotels.Name(),
		func(ctx context.Context) ([]domain.Hotel, error) {
			return u.hotels.Search(ctx, params)
		},
		func() []domain.Hotel { return u.fallbacks.Hotels(params) },
	)
}

// SearchActivities validates the request and queries the activity provider.
func (u *SearchUsecase) SearchActivities(ctx context.Context, sessionID string, params domain.ActivitySearchParams) (*domain.SearchResult[domain.Activity], error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return run(u, ctx, sessionID, domain.ItemTypeActivity, u.activities.Name(),
		func(ctx context.Context) ([]domain.Activity, error) {
			return u.activities.Search(ctx, params)
		},
		func() []domain.Activity { return u.fallbacks.Activities(params) },
	)
}

// ActivityCategories lists the activity provider's category filters.
func (u *SearchUsecase) ActivityCategories() []domain.Category {
	return u.activities.Categories()
}

// run executes one search: issue a sequence number, call the provider under
// the timeout, substitute the tagged fallback set on failure, and discard
// the outcome when a newer search already delivered.
func run[T any](
	u *SearchUsecase,
	ctx context.Context,
	sessionID string,
	d domain.ItemType,
	provider string,
	search func(context.Context) ([]T, error),
	fallback func() []T,
) (*domain.SearchResult[T], error) {
	seq := u.tracker.Next(sessionID, d)
	log := u.log.WithSession(sessionID).WithProvider(provider)

	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	items, err := search(callCtx)
	elapsed := time.Since(start)

	var result *domain.SearchResult[T]
	if err != nil {
		// The caller's own cancellation is not a provider failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		reason := failureReason(err)
		log.Warn().Err(err).
			Str("domain", string(d)).
			Dur("elapsed", elapsed).
			Msg("provider search failed, serving fallback results")
		result = domain.NewFallbackResult(provider, fallback(), reason)
	} else {
		result = domain.NewLiveResult(provider, items)
	}
	result.Sequence = seq
	result.DurationMs = elapsed.Milliseconds()

	if !u.tracker.Apply(sessionID, d, seq) {
		log.Debug().
			Str("domain", string(d)).
			Uint64("sequence", seq).
			Msg("discarding stale search result")
		return nil, ErrStaleResult
	}

	log.Info().
		Str("domain", string(d)).
		Str("source", string(result.Source)).
		Int("results", len(result.Items)).
		Dur("elapsed", elapsed).
		Msg("search completed")
	return result, nil
}

// Ensure interface is implemented.
var _ SearchService = (*SearchUsecase)(nil)

// failureReason condenses a provider error into the reason string recorded
// on fallback results.
func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrProviderTimeout):
		return "provider timed out"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "provider unavailable"
	default:
		return err.Error()
	}
}
