// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns a date string (YYYY-MM-DD) the given number of days from
// now. Search params validate against the past, so tests build their dates
// relative to the current day.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// MustMarshal marshals v to JSON, failing the test on error.
func MustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal %T: %v", v, err)
	}
	return data
}

// MustUnmarshal unmarshals JSON data into v, failing the test on error.
func MustUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal into %T: %v\nbody: %s", v, err, data)
	}
}

// DefaultFlightParams returns valid flight search params for tests.
func DefaultFlightParams() domain.FlightSearchParams {
	p := domain.FlightSearchParams{
		Origin:        "LOS",
		Destination:   "SIN",
		DepartureDate: FutureDate(30),
	}
	p.SetDefaults()
	return p
}

// DefaultHotelParams returns valid hotel search params for tests.
func DefaultHotelParams() domain.HotelSearchParams {
	p := domain.HotelSearchParams{
		Destination: "Mumbai",
		CheckIn:     FutureDate(30),
		CheckOut:    FutureDate(32),
	}
	p.SetDefaults()
	return p
}

// DefaultActivityParams returns valid activity search params for tests.
func DefaultActivityParams() domain.ActivitySearchParams {
	p := domain.ActivitySearchParams{
		Destination: "New York",
		Date:        FutureDate(30),
	}
	p.SetDefaults()
	return p
}
