package skyscrapper

import (
	"fmt"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/timeutil"
)

// searchResponse mirrors the provider's search payload. Only the fields the
// normalizer reads are declared.
type searchResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Itineraries []itinerary `json:"itineraries"`
	} `json:"data"`
}

type itinerary struct {
	ID    string `json:"id"`
	Price struct {
		Raw       float64 `json:"raw"`
		Formatted string  `json:"formatted"`
	} `json:"price"`
	Legs []leg `json:"legs"`
}

type leg struct {
	Departure         string    `json:"departure"`
	Arrival           string    `json:"arrival"`
	DurationInMinutes int       `json:"durationInMinutes"`
	StopCount         int       `json:"stopCount"`
	Origin            airport   `json:"origin"`
	Destination       airport   `json:"destination"`
	Segments          []segment `json:"segments"`
}

type airport struct {
	DisplayCode string `json:"displayCode"`
	Name        string `json:"name"`
}

type segment struct {
	FlightNumber     string `json:"flightNumber"`
	MarketingCarrier struct {
		Name string `json:"name"`
	} `json:"marketingCarrier"`
}

// defaultFacilities is the facility list attached to live search results;
// the provider does not expose per-flight amenities at search time.
var defaultFacilities = []string{"Baggage included", "Seat selection", "In-flight service"}

// normalize converts provider itineraries to domain Flights, using the first
// leg of each itinerary. Itineraries that cannot be normalized are skipped.
func normalize(itineraries []itinerary, currency string) []domain.Flight {
	result := make([]domain.Flight, 0, len(itineraries))
	for _, it := range itineraries {
		f, err := normalizeItinerary(it, currency)
		if err != nil {
			continue
		}
		result = append(result, f)
	}
	return result
}

func normalizeItinerary(it itinerary, currency string) (domain.Flight, error) {
	if len(it.Legs) == 0 {
		return domain.Flight{}, fmt.Errorf("itinerary %s has no legs", it.ID)
	}
	l := it.Legs[0]

	departs, err := timeutil.ParseFlexible(l.Departure)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("parse departure: %w", err)
	}
	arrives, err := timeutil.ParseFlexible(l.Arrival)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("parse arrival: %w", err)
	}

	airline := "Unknown Airline"
	flightNumber := "N/A"
	if len(l.Segments) > 0 {
		if name := l.Segments[0].MarketingCarrier.Name; name != "" {
			airline = name
		}
		if num := l.Segments[0].FlightNumber; num != "" {
			flightNumber = num
		}
	}

	return domain.Flight{
		ID:           it.ID,
		Airline:      airline,
		FlightNumber: flightNumber,
		Departure: domain.FlightPoint{
			Time: timeutil.FormatClock(departs),
			Date: timeutil.FormatDisplayDate(departs),
			Code: l.Origin.DisplayCode,
			City: l.Origin.Name,
		},
		Arrival: domain.FlightPoint{
			Time: timeutil.FormatClock(arrives),
			Date: timeutil.FormatDisplayDate(arrives),
			Code: l.Destination.DisplayCode,
			City: l.Destination.Name,
		},
		Duration:   timeutil.FormatDuration(l.DurationInMinutes),
		Type:       stopLabel(l.StopCount),
		Price:      domain.FormatPrice(it.Price.Raw, currency),
		Facilities: defaultFacilities,
	}, nil
}

// stopLabel renders the trip-style label ("Direct", "1 Stop", "2 Stops").
func stopLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Direct"
	case stops == 1:
		return "1 Stop"
	default:
		return fmt.Sprintf("%d Stops", stops)
	}
}
