// Package localguide implements the activity provider over a curated
// in-process catalog. No external activity gateway is wired yet, so
// the catalog stands in behind the same provider interface the live
// adapters implement.
package localguide

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the catalog provider.
const ProviderName = "local_guide"

// categoryAll disables category filtering.
const categoryAll = "all"

// catalogEntry is one curated activity before request-specific fields
// (location, schedule note) are stamped in.
type catalogEntry struct {
	name        string
	description string
	rating      float64
	reviews     int
	duration    string
	price       string
	category    string
	highlights  []string
	included    string
}

var catalog = []catalogEntry{
	{
		name:        "The Museum of Modern Art",
		description: "Works from Van Gogh to Warhol & beyond plus a sculpture garden, 2 cafes & the modern restaurant.",
		rating:      4.5,
		reviews:     430,
		duration:    "2-3 hours",
		price:       "$25.00",
		category:    "Museums & Culture",
		highlights:  []string{"Skip-the-line access", "Audio guide included", "Free WiFi"},
		included:    "Admission to the museum and audio guide",
	},
	{
		name:        "Central Park Walking Tour",
		description: "Explore the iconic Central Park with a knowledgeable local guide and discover hidden gems.",
		rating:      4.7,
		reviews:     892,
		duration:    "2 hours",
		price:       "$35.00",
		category:    "Tours & Sightseeing",
		highlights:  []string{"Professional guide", "Small group size", "Photo opportunities"},
		included:    "Professional guide and photo opportunities",
	},
	{
		name:        "Food Market Tour",
		description: "Taste your way through local markets and discover authentic flavors with a food expert.",
		rating:      4.8,
		reviews:     654,
		duration:    "3 hours",
		price:       "$65.00",
		category:    "Food & Drink",
		highlights:  []string{"Local food tastings", "Market insights", "Recipe cards"},
		included:    "Food tastings, market guide, and recipe cards",
	},
}

var categories = []domain.Category{
	{Value: "all", Label: "All Categories"},
	{Value: "museums", Label: "Museums & Culture"},
	{Value: "tours", Label: "Tours & Sightseeing"},
	{Value: "outdoor", Label: "Outdoor Activities"},
	{Value: "food", Label: "Food & Drink"},
	{Value: "entertainment", Label: "Entertainment"},
	{Value: "adventure", Label: "Adventure Sports"},
	{Value: "wellness", Label: "Wellness & Spa"},
}

// Adapter is the catalog-backed activity provider.
type Adapter struct{}

// NewAdapter creates the catalog activity provider.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.ActivityProvider. A category filter matches
// by case-insensitive substring so short values like "food" select
// "Food & Drink".
func (a *Adapter) Search(ctx context.Context, params domain.ActivitySearchParams) ([]domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	note := scheduleNote(params.Date)

	activities := make([]domain.Activity, 0, len(catalog))
	for i, entry := range catalog {
		if !matchesCategory(entry.category, params.Category) {
			continue
		}
		activities = append(activities, entry.toActivity(i+1, params.Destination, note))
	}
	return activities, nil
}

// Categories returns the filter options in display order.
func (a *Adapter) Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

func (e catalogEntry) toActivity(ord int, location, note string) domain.Activity {
	return domain.Activity{
		ID:          fmt.Sprintf("activity-%d", ord),
		Name:        e.name,
		Description: e.description,
		Rating:      e.rating,
		Reviews:     e.reviews,
		Duration:    e.duration,
		Price:       e.price,
		Note:        note,
		Included:    e.included,
		Category:    e.category,
		Location:    location,
		Highlights:  append([]string(nil), e.highlights...),
	}
}

func matchesCategory(category, filter string) bool {
	if filter == "" || strings.EqualFold(filter, categoryAll) {
		return true
	}
	return strings.Contains(strings.ToLower(category), strings.ToLower(filter))
}

// scheduleNote renders the requested date as a display note, or a
// placeholder when the request carries none.
func scheduleNote(date string) string {
	if date == "" {
		return "Time to be confirmed"
	}
	t, err := timeutil.ParseFlexible(date)
	if err != nil {
		return "Time to be confirmed"
	}
	return "10:30 AM on " + timeutil.FormatDisplayDate(t)
}

// Ensure interface is implemented.
var _ domain.ActivityProvider = (*Adapter)(nil)
