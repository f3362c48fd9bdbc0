package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/timeutil"
)

func sampleItinerary() *domain.Itinerary {
	it := domain.NewItinerary()
	it.AddFlight(domain.Flight{
		ID:           "f1",
		Airline:      "Emirates",
		FlightNumber: "EK-783",
		Departure:    domain.FlightPoint{Time: "14:20", Date: "Sun, 30 Aug", Code: "LOS"},
		Arrival:      domain.FlightPoint{Time: "16:45", Date: "Sun, 30 Aug", Code: "SIN"},
		Duration:     "2h 25m",
		Type:         "Direct",
		Price:        "$675.00",
		Facilities:   []string{"WiFi"},
	})
	it.AddHotel(domain.Hotel{ID: "h1", Name: "Riviera Resort", Price: "$150.00", Nights: "1 night"})
	return it
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	require.NoError(t, m.Save(ctx, "sess-1", sampleItinerary()))

	loaded, err := m.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Flights, 1)
	assert.Equal(t, "EK-783", loaded.Flights[0].FlightNumber)
	require.Len(t, loaded.Hotels, 1)
	assert.NotNil(t, loaded.Activities)
	assert.Equal(t, domain.SnapshotVersion, loaded.Version)
}

func TestMemoryLoadMissing(t *testing.T) {
	m := NewMemory(0)

	_, err := m.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	require.NoError(t, m.Save(ctx, "sess-1", sampleItinerary()))
	require.NoError(t, m.Delete(ctx, "sess-1"))

	_, err := m.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	// Deleting again is not an error.
	assert.NoError(t, m.Delete(ctx, "sess-1"))
}

func TestMemoryIsolation(t *testing.T) {
	// Mutating a loaded itinerary must not change the stored snapshot.
	ctx := context.Background()
	m := NewMemory(0)
	require.NoError(t, m.Save(ctx, "sess-1", sampleItinerary()))

	first, err := m.Load(ctx, "sess-1")
	require.NoError(t, err)
	first.Clear()

	second, err := m.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Count())
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClockFromString("2026-08-30T10:00:00Z")
	m := NewMemoryWithClock(30*time.Minute, clock)

	require.NoError(t, m.Save(ctx, "sess-1", sampleItinerary()))

	// Still alive just before the TTL.
	clock.Advance(29 * time.Minute)
	_, err := m.Load(ctx, "sess-1")
	assert.NoError(t, err)

	// Saving refreshes the expiry.
	require.NoError(t, m.Save(ctx, "sess-1", sampleItinerary()))
	clock.Advance(29 * time.Minute)
	_, err = m.Load(ctx, "sess-1")
	assert.NoError(t, err)

	// Past the TTL the session is gone.
	clock.Advance(2 * time.Minute)
	_, err = m.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestDecodeSnapshotCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{not-json"},
		{name: "wrong layout version", data: `{"version":99,"flights":[],"hotels":[],"activities":[]}`},
		{name: "missing version", data: `{"flights":[],"hotels":[],"activities":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSnapshot([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
		})
	}
}

func TestDecodeSnapshotNilCollections(t *testing.T) {
	it, err := decodeSnapshot([]byte(`{"version":1}`))
	require.NoError(t, err)
	assert.NotNil(t, it.Flights)
	assert.NotNil(t, it.Hotels)
	assert.NotNil(t, it.Activities)
	assert.True(t, it.IsEmpty())
}
