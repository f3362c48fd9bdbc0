// Package usecase implements the application services: session-scoped
// itinerary management and provider-backed travel search.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/logger"
	"github.com/tripdeck/travel-itinerary-service/internal/store"
)

// ItineraryService is the inbound port for itinerary reads and mutations.
type ItineraryService interface {
	Get(ctx context.Context, sessionID string) (*domain.Itinerary, error)
	AddFlight(ctx context.Context, sessionID string, f domain.Flight) (*domain.Itinerary, error)
	AddHotel(ctx context.Context, sessionID string, h domain.Hotel) (*domain.Itinerary, error)
	AddActivity(ctx context.Context, sessionID string, a domain.Activity) (*domain.Itinerary, error)
	RemoveItem(ctx context.Context, sessionID string, itemType domain.ItemType, id string) (*domain.Itinerary, error)
	Clear(ctx context.Context, sessionID string) error
	Summarize(ctx context.Context, sessionID string) (*Summary, error)
}

// ItineraryUsecase owns the mutation rules for session itineraries. Every
// operation is load-modify-save against the injected snapshot store; the
// store is the single source of truth.
type ItineraryUsecase struct {
	store store.SnapshotStore
	log   *logger.Logger
}

// NewItineraryUsecase creates the itinerary service.
func NewItineraryUsecase(s store.SnapshotStore, log *logger.Logger) *ItineraryUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &ItineraryUsecase{store: s, log: log}
}

// Get returns the session's itinerary. A missing or unreadable snapshot
// yields a fresh empty itinerary; corruption is logged, never surfaced.
func (u *ItineraryUsecase) Get(ctx context.Context, sessionID string) (*domain.Itinerary, error) {
	it, err := u.store.Load(ctx, sessionID)
	switch {
	case err == nil:
		return it, nil
	case errors.Is(err, store.ErrSnapshotNotFound):
		return domain.NewItinerary(), nil
	case errors.Is(err, domain.ErrSnapshotCorrupt):
		u.log.WithSession(sessionID).Warn().Err(err).Msg("discarding unreadable itinerary snapshot")
		return domain.NewItinerary(), nil
	default:
		return nil, fmt.Errorf("load itinerary: %w", err)
	}
}

// AddFlight appends a flight to the session's itinerary. A fresh id is
// issued at add time so repeated adds of the same search result remain
// individually removable.
func (u *ItineraryUsecase) AddFlight(ctx context.Context, sessionID string, f domain.Flight) (*domain.Itinerary, error) {
	return u.mutate(ctx, sessionID, func(it *domain.Itinerary) {
		f.ID = domain.NewItemID()
		it.AddFlight(f)
	})
}

// AddHotel appends a hotel to the session's itinerary under a fresh id.
func (u *ItineraryUsecase) AddHotel(ctx context.Context, sessionID string, h domain.Hotel) (*domain.Itinerary, error) {
	return u.mutate(ctx, sessionID, func(it *domain.Itinerary) {
		h.ID = domain.NewItemID()
		it.AddHotel(h)
	})
}

// AddActivity appends an activity to the session's itinerary under a fresh id.
func (u *ItineraryUsecase) AddActivity(ctx context.Context, sessionID string, a domain.Activity) (*domain.Itinerary, error) {
	return u.mutate(ctx, sessionID, func(it *domain.Itinerary) {
		a.ID = domain.NewItemID()
		it.AddActivity(a)
	})
}

// RemoveItem removes the first item of the given type with the given id.
// Removing an absent id leaves the itinerary unchanged.
func (u *ItineraryUsecase) RemoveItem(ctx context.Context, sessionID string, itemType domain.ItemType, id string) (*domain.Itinerary, error) {
	var removed bool
	it, err := u.mutate(ctx, sessionID, func(it *domain.Itinerary) {
		removed = it.RemoveItem(itemType, id)
	})
	if err != nil {
		return nil, err
	}
	if !removed {
		u.log.WithSession(sessionID).Debug().
			Str("item_type", string(itemType)).
			Str("item_id", id).
			Msg("remove requested for absent item")
	}
	return it, nil
}

// Clear drops the session's itinerary entirely.
func (u *ItineraryUsecase) Clear(ctx context.Context, sessionID string) error {
	if err := u.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear itinerary: %w", err)
	}
	return nil
}

// Summary is the derived view of an itinerary: per-collection counts, the
// parsed cost total, and the advisory validation outcome.
type Summary struct {
	FlightCount   int                     `json:"flight_count"`
	HotelCount    int                     `json:"hotel_count"`
	ActivityCount int                     `json:"activity_count"`
	TotalItems    int                     `json:"total_items"`
	TotalCost     float64                 `json:"total_cost"`
	Validation    domain.ValidationResult `json:"validation"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// Summarize computes the derived view for the session's itinerary.
func (u *ItineraryUsecase) Summarize(ctx context.Context, sessionID string) (*Summary, error) {
	it, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		FlightCount:   len(it.Flights),
		HotelCount:    len(it.Hotels),
		ActivityCount: len(it.Activities),
		TotalItems:    it.Count(),
		TotalCost:     it.TotalCost(),
		Validation:    it.Validate(),
		UpdatedAt:     it.UpdatedAt,
	}, nil
}

// Ensure interface is implemented.
var _ ItineraryService = (*ItineraryUsecase)(nil)

// mutate runs the load-modify-save cycle, stamping UpdatedAt on the way out.
func (u *ItineraryUsecase) mutate(ctx context.Context, sessionID string, fn func(*domain.Itinerary)) (*domain.Itinerary, error) {
	it, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(it)
	it.UpdatedAt = time.Now().UTC()

	if err := u.store.Save(ctx, sessionID, it); err != nil {
		return nil, fmt.Errorf("save itinerary: %w", err)
	}
	return it, nil
}
