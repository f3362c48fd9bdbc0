package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/tripdeck/travel-itinerary-service/internal/adapter/http"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/response"
	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/test/mock"
)

// scriptedFlightProvider runs a different search function per call, in call
// order. Used to orchestrate overlapping requests deterministically.
type scriptedFlightProvider struct {
	name  string
	calls []func(ctx context.Context) ([]domain.Flight, error)
	mu    sync.Mutex
	next  int
}

func (p *scriptedFlightProvider) Name() string { return p.name }

func (p *scriptedFlightProvider) Search(ctx context.Context, _ domain.FlightSearchParams) ([]domain.Flight, error) {
	p.mu.Lock()
	i := p.next
	p.next++
	p.mu.Unlock()

	if i >= len(p.calls) {
		return nil, fmt.Errorf("unexpected call %d", i+1)
	}
	return p.calls[i](ctx)
}

// TestConcurrent_SearchesAcrossSessions tests that parallel searches from
// independent sessions all succeed and each session gets its own sequence.
func TestConcurrent_SearchesAcrossSessions(t *testing.T) {
	// Arrange
	ts := newDefaultServer()
	const numSessions = 20

	results := make([]Response, numSessions)
	var wg sync.WaitGroup

	// Act
	for i := 0; i < numSessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ts.SearchFlights(fmt.Sprintf("session-%d", i), DefaultFlightBody())
		}(i)
	}
	wg.Wait()

	// Assert
	for i, resp := range results {
		assert.Equal(t, http.StatusOK, resp.Code, "session %d", i)

		var body httpAdapter.FlightSearchResponseDTO
		require.NoError(t, resp.ParseData(&body))
		assert.Equal(t, "live", body.Metadata.Source)
		assert.Equal(t, uint64(1), body.Metadata.Sequence, "sessions are independent")
	}
}

// TestConcurrent_RepeatedSearchesIncrementSequence tests that sequential
// searches in one session carry increasing sequence numbers.
func TestConcurrent_RepeatedSearchesIncrementSequence(t *testing.T) {
	ts := newDefaultServer()

	for want := uint64(1); want <= 3; want++ {
		resp := ts.SearchFlights("session-1", DefaultFlightBody())
		require.Equal(t, http.StatusOK, resp.Code)

		var body httpAdapter.FlightSearchResponseDTO
		require.NoError(t, resp.ParseData(&body))
		assert.Equal(t, want, body.Metadata.Sequence)
	}
}

// TestConcurrent_StaleSearchDiscarded tests that when a newer search for the
// same session completes first, the older in-flight search is rejected with
// 409 rather than delivering outdated results.
func TestConcurrent_StaleSearchDiscarded(t *testing.T) {
	// Arrange: the first provider call blocks until released; the second
	// returns immediately.
	started := make(chan struct{})
	release := make(chan struct{})
	provider := &scriptedFlightProvider{
		name: "sky_scrapper",
		calls: []func(ctx context.Context) ([]domain.Flight, error){
			func(ctx context.Context) ([]domain.Flight, error) {
				close(started)
				select {
				case <-release:
					return mock.SampleFlights("slow", 1), nil
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			},
			func(context.Context) ([]domain.Flight, error) {
				return mock.SampleFlights("fast", 1), nil
			},
		},
	}

	ts := NewTestServer(ServerConfig{
		Flights:    provider,
		Hotels:     mock.NewHotelProvider("booking_com"),
		Activities: mock.NewActivityProvider("local_guide"),
		Fallbacks:  DefaultFallbacks(),
	})

	// Act: start the slow search, wait until it holds sequence 1, run the
	// fast search to completion, then let the slow one finish.
	var slowResp Response
	done := make(chan struct{})
	go func() {
		defer close(done)
		slowResp = ts.SearchFlights("session-1", DefaultFlightBody())
	}()

	<-started
	fastResp := ts.SearchFlights("session-1", DefaultFlightBody())
	close(release)
	<-done

	// Assert: the fast search delivered, the slow one was discarded.
	require.Equal(t, http.StatusOK, fastResp.Code)

	var fast httpAdapter.FlightSearchResponseDTO
	require.NoError(t, fastResp.ParseData(&fast))
	assert.Equal(t, uint64(2), fast.Metadata.Sequence)
	assert.Equal(t, "fast-flight-1", fast.Flights[0].ID)

	assert.Equal(t, http.StatusConflict, slowResp.Code)
	detail, err := slowResp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeStaleRequest, detail.Code)
}

// TestConcurrent_ItineraryAcrossSessions tests that parallel itinerary
// mutations in separate sessions do not interfere.
func TestConcurrent_ItineraryAcrossSessions(t *testing.T) {
	// Arrange
	ts := newDefaultServer()
	const numSessions = 10
	flight := mock.SampleFlights("sky_scrapper", 1)[0]

	var wg sync.WaitGroup

	// Act
	for i := 0; i < numSessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session := fmt.Sprintf("session-%d", i)
			ts.AddItem(session, "flight", flight)
			ts.AddItem(session, "activity", mock.SampleActivities("local_guide", 1)[0])
		}(i)
	}
	wg.Wait()

	// Assert
	for i := 0; i < numSessions; i++ {
		var body httpAdapter.ItineraryResponseDTO
		resp := ts.GetItinerary(fmt.Sprintf("session-%d", i))
		require.Equal(t, http.StatusOK, resp.Code)
		require.NoError(t, resp.ParseData(&body))
		assert.Equal(t, 2, body.TotalItems, "session %d", i)
	}
}
