package localguide

import "github.com/tripdeck/travel-itinerary-service/internal/domain"

// FallbackActivities returns the curated catalog without consulting the
// provider. Used when a search cannot complete (e.g. cancelled context).
func FallbackActivities(params domain.ActivitySearchParams) []domain.Activity {
	note := scheduleNote(params.Date)
	activities := make([]domain.Activity, 0, len(catalog))
	for i, entry := range catalog {
		activities = append(activities, entry.toActivity(i+1, params.Destination, note))
	}
	return activities
}
