package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightProvider searches an external flight API and normalizes its response
// into Flight entities. Implementations respect context cancellation and
// return results in the provider's order.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search queries the provider for flights matching the params.
	Search(ctx context.Context, params FlightSearchParams) ([]Flight, error)
}

// HotelProvider searches an external hotel API and normalizes its response
// into Hotel entities.
type HotelProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search queries the provider for hotels matching the params.
	Search(ctx context.Context, params HotelSearchParams) ([]Hotel, error)
}

// ActivityProvider searches an activity listing source and normalizes its
// response into Activity entities.
type ActivityProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search queries the provider for activities matching the params.
	Search(ctx context.Context, params ActivitySearchParams) ([]Activity, error)

	// Categories lists the category filters the provider understands.
	Categories() []Category
}

// Category is a selectable activity category filter.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
