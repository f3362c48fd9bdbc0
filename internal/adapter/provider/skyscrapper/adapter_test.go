package skyscrapper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// searchBody is a trimmed provider response with one direct and one
// one-stop itinerary.
const searchBody = `{
  "status": true,
  "data": {
    "itineraries": [
      {
        "id": "it-1",
        "price": {"raw": 450, "formatted": "$450"},
        "legs": [{
          "departure": "2026-08-30T08:35:00",
          "arrival": "2026-08-30T09:55:00",
          "durationInMinutes": 80,
          "stopCount": 0,
          "origin": {"displayCode": "LOS", "name": "Lagos"},
          "destination": {"displayCode": "SIN", "name": "Singapore"},
          "segments": [{"flightNumber": "924", "marketingCarrier": {"name": "American Airlines"}}]
        }]
      },
      {
        "id": "it-2",
        "price": {"raw": 675.5, "formatted": "$675.50"},
        "legs": [{
          "departure": "2026-08-30T14:20:00",
          "arrival": "2026-08-30T18:45:00",
          "durationInMinutes": 265,
          "stopCount": 1,
          "origin": {"displayCode": "LOS", "name": "Lagos"},
          "destination": {"displayCode": "SIN", "name": "Singapore"},
          "segments": [{"flightNumber": "783", "marketingCarrier": {"name": "Emirates"}}]
        }]
      }
    ]
  }
}`

func testParams() domain.FlightSearchParams {
	return domain.FlightSearchParams{
		Origin:        "LOS",
		Destination:   "SIN",
		DepartureDate: "2026-08-30",
		Passengers:    1,
		CabinClass:    "economy",
	}
}

func newTestAdapter(serverURL string) *Adapter {
	a := NewAdapter(Config{
		BaseURL:  serverURL,
		APIKey:   "test-key",
		Currency: "USD",
		Timeout:  time.Second,
	})
	// Keep retries fast in tests.
	a.retryCfg = a.retryCfg.WithInitialDelay(time.Millisecond)
	return a
}

func TestSearchNormalizesResponse(t *testing.T) {
	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Encode())
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	flights, err := a.Search(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, flights, 2)

	first := flights[0]
	assert.Equal(t, "it-1", first.ID)
	assert.Equal(t, "American Airlines", first.Airline)
	assert.Equal(t, "924", first.FlightNumber)
	assert.Equal(t, "08:35", first.Departure.Time)
	assert.Equal(t, "Sun, 30 Aug", first.Departure.Date)
	assert.Equal(t, "LOS", first.Departure.Code)
	assert.Equal(t, "Singapore", first.Arrival.City)
	assert.Equal(t, "1h 20m", first.Duration)
	assert.Equal(t, "Direct", first.Type)
	assert.Equal(t, "$450.00", first.Price)
	assert.NotEmpty(t, first.Facilities)

	second := flights[1]
	assert.Equal(t, "1 Stop", second.Type)
	assert.Equal(t, "$675.50", second.Price)
	assert.Equal(t, "4h 25m", second.Duration)

	query := gotQuery.Load().(string)
	assert.Contains(t, query, "originSkyId=LOS")
	assert.Contains(t, query, "destinationSkyId=SIN")
	assert.Contains(t, query, "date=2026-08-30")
	assert.Contains(t, query, "currency=USD")
}

func TestSearchSkipsMalformedItineraries(t *testing.T) {
	body := `{"status": true, "data": {"itineraries": [
		{"id": "no-legs", "price": {"raw": 1}, "legs": []},
		{"id": "bad-time", "price": {"raw": 1}, "legs": [{"departure": "garbage", "arrival": "garbage"}]}
	]}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	flights, err := newTestAdapter(srv.URL).Search(context.Background(), testParams())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestSearchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	flights, err := newTestAdapter(srv.URL).Search(context.Background(), testParams())
	require.NoError(t, err)
	assert.Len(t, flights, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSearchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Search(context.Background(), testParams())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var provErr *domain.ProviderError
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, ProviderName, provErr.Provider)
}

func TestSearchExhaustedRetriesReturnUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Search(context.Background(), testParams())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFallbackFlights(t *testing.T) {
	flights := FallbackFlights(domain.FlightSearchParams{Origin: "los", Destination: "sin"})

	require.Len(t, flights, 2)
	assert.Equal(t, "AA-924", flights[0].FlightNumber)
	assert.Equal(t, "EK-783", flights[1].FlightNumber)
	assert.Equal(t, "LOS", flights[0].Departure.Code)
	assert.Equal(t, "SIN", flights[0].Arrival.Code)
}
