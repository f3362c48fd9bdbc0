package skyscrapper

import (
	"strings"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// FallbackFlights is the documented static sample set substituted when the
// flight provider is unreachable. The endpoints echo the search parameters
// so the list stays plausible for the requested route.
func FallbackFlights(params domain.FlightSearchParams) []domain.Flight {
	origin := strings.ToUpper(params.Origin)
	destination := strings.ToUpper(params.Destination)

	return []domain.Flight{
		{
			ID:           "fallback-flight-1",
			Airline:      "American Airlines",
			FlightNumber: "AA-924",
			Departure:    domain.FlightPoint{Time: "08:35", Date: "Sun, 30 Aug", Code: origin, City: params.Origin},
			Arrival:      domain.FlightPoint{Time: "09:55", Date: "Sun, 30 Aug", Code: destination, City: params.Destination},
			Duration:     "1h 20m",
			Type:         "Direct",
			Price:        "$450.00",
			Facilities:   []string{"Baggage: 20kg", "Cabin baggage: 8kg", "In flight entertainment", "In flight meal", "USB Port"},
		},
		{
			ID:           "fallback-flight-2",
			Airline:      "Emirates",
			FlightNumber: "EK-783",
			Departure:    domain.FlightPoint{Time: "14:20", Date: "Sun, 30 Aug", Code: origin, City: params.Origin},
			Arrival:      domain.FlightPoint{Time: "16:45", Date: "Sun, 30 Aug", Code: destination, City: params.Destination},
			Duration:     "2h 25m",
			Type:         "Direct",
			Price:        "$675.00",
			Facilities:   []string{"Baggage: 30kg", "Cabin baggage: 8kg", "In flight entertainment", "In flight meal", "WiFi"},
		},
	}
}
