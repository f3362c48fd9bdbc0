// Package mock provides test doubles for the trip planner. These mocks are
// designed for integration testing where we need configurable behavior
// (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// FlightProvider is a configurable mock implementation of
// domain.FlightProvider. It supports configurable delays, errors, and
// responses for testing scenarios including timeouts and fallbacks.
type FlightProvider struct {
	name      string
	flights   []domain.Flight
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewFlightProvider creates a new mock flight provider with the given name.
// The provider is configured using the builder pattern methods.
func NewFlightProvider(name string) *FlightProvider {
	return &FlightProvider{name: name}
}

// WithFlights configures the provider to return the given flights.
func (p *FlightProvider) WithFlights(flights []domain.Flight) *FlightProvider {
	p.flights = flights
	return p
}

// WithError configures the provider to return the given error.
func (p *FlightProvider) WithError(err error) *FlightProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. Useful for testing timeout behavior.
func (p *FlightProvider) WithDelay(d time.Duration) *FlightProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *FlightProvider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider.Search. It respects context
// cancellation, applies the configured delay, and returns the configured
// flights or error.
func (p *FlightProvider) Search(ctx context.Context, _ domain.FlightSearchParams) ([]domain.Flight, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.flights, nil
}

// CallCount returns how many times Search has been invoked.
func (p *FlightProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// HotelProvider is a configurable mock implementation of domain.HotelProvider.
type HotelProvider struct {
	name      string
	hotels    []domain.Hotel
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewHotelProvider creates a new mock hotel provider with the given name.
func NewHotelProvider(name string) *HotelProvider {
	return &HotelProvider{name: name}
}

// WithHotels configures the provider to return the given hotels.
func (p *HotelProvider) WithHotels(hotels []domain.Hotel) *HotelProvider {
	p.hotels = hotels
	return p
}

// WithError configures the provider to return the given error.
func (p *HotelProvider) WithError(err error) *HotelProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
func (p *HotelProvider) WithDelay(d time.Duration) *HotelProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *HotelProvider) Name() string {
	return p.name
}

// Search implements domain.HotelProvider.Search.
func (p *HotelProvider) Search(ctx context.Context, _ domain.HotelSearchParams) ([]domain.Hotel, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.hotels, nil
}

// CallCount returns how many times Search has been invoked.
func (p *HotelProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// ActivityProvider is a configurable mock implementation of
// domain.ActivityProvider.
type ActivityProvider struct {
	name       string
	activities []domain.Activity
	categories []domain.Category
	err        error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewActivityProvider creates a new mock activity provider with the given name.
func NewActivityProvider(name string) *ActivityProvider {
	return &ActivityProvider{name: name}
}

// WithActivities configures the provider to return the given activities.
func (p *ActivityProvider) WithActivities(activities []domain.Activity) *ActivityProvider {
	p.activities = activities
	return p
}

// WithCategories configures the provider's category list.
func (p *ActivityProvider) WithCategories(categories []domain.Category) *ActivityProvider {
	p.categories = categories
	return p
}

// WithError configures the provider to return the given error.
func (p *ActivityProvider) WithError(err error) *ActivityProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
func (p *ActivityProvider) WithDelay(d time.Duration) *ActivityProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *ActivityProvider) Name() string {
	return p.name
}

// Search implements domain.ActivityProvider.Search.
func (p *ActivityProvider) Search(ctx context.Context, _ domain.ActivitySearchParams) ([]domain.Activity, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.activities, nil
}

// Categories implements domain.ActivityProvider.Categories.
func (p *ActivityProvider) Categories() []domain.Category {
	return p.categories
}

// CallCount returns how many times Search has been invoked.
func (p *ActivityProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// wait blocks for the given delay while honoring context cancellation.
func wait(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return ctx.Err()
}

// SampleFlights generates n flights attributed to the given provider.
func SampleFlights(provider string, n int) []domain.Flight {
	flights := make([]domain.Flight, n)
	for i := 0; i < n; i++ {
		flights[i] = domain.Flight{
			ID:           fmt.Sprintf("%s-flight-%d", provider, i+1),
			Airline:      "Sample Air",
			FlightNumber: fmt.Sprintf("SA-%03d", i+1),
			Departure:    domain.FlightPoint{Time: "08:35", Date: "Sun, 30 Aug", Code: "LOS", City: "Lagos"},
			Arrival:      domain.FlightPoint{Time: "09:55", Date: "Sun, 30 Aug", Code: "SIN", City: "Singapore"},
			Duration:     "1h 20m",
			Type:         "Direct",
			Price:        fmt.Sprintf("$%d.00", 100+i*50),
			Facilities:   []string{"Baggage included"},
		}
	}
	return flights
}

// SampleHotels generates n hotels attributed to the given provider.
func SampleHotels(provider string, n int) []domain.Hotel {
	hotels := make([]domain.Hotel, n)
	for i := 0; i < n; i++ {
		hotels[i] = domain.Hotel{
			ID:         fmt.Sprintf("%s-hotel-%d", provider, i+1),
			Name:       fmt.Sprintf("Sample Hotel %d", i+1),
			Address:    "1 Sample Street",
			Rating:     4.0,
			Reviews:    100,
			Price:      fmt.Sprintf("$%d.00", 80+i*20),
			Nights:     "1 night x 1 room incl. taxes",
			CheckIn:    "2026-09-01",
			CheckOut:   "2026-09-03",
			Facilities: []string{"WiFi"},
		}
	}
	return hotels
}

// SampleActivities generates n activities attributed to the given provider.
func SampleActivities(provider string, n int) []domain.Activity {
	activities := make([]domain.Activity, n)
	for i := 0; i < n; i++ {
		activities[i] = domain.Activity{
			ID:          fmt.Sprintf("%s-activity-%d", provider, i+1),
			Name:        fmt.Sprintf("Sample Activity %d", i+1),
			Description: "A sample activity",
			Rating:      4.5,
			Reviews:     50,
			Duration:    "2 hours",
			Price:       fmt.Sprintf("$%d.00", 20+i*10),
			Note:        "Time to be confirmed",
			Included:    "Guide",
		}
	}
	return activities
}
