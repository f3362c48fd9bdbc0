// Package integration provides helpers and integration tests for the trip
// planner. Integration tests verify that components work together correctly,
// including HTTP handlers, middleware, use cases, the session store, and mock
// providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/tripdeck/travel-itinerary-service/internal/adapter/http"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/middleware"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/response"
	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/logger"
	"github.com/tripdeck/travel-itinerary-service/internal/store"
	"github.com/tripdeck/travel-itinerary-service/internal/usecase"
	"github.com/tripdeck/travel-itinerary-service/test/mock"
	"github.com/tripdeck/travel-itinerary-service/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing. It wires the full middleware chain, so requests flow
// through session resolution exactly as they do in production.
type TestServer struct {
	Echo  *echo.Echo
	Store store.SnapshotStore
}

// ServerConfig configures the providers and fallbacks backing a TestServer.
type ServerConfig struct {
	Flights    domain.FlightProvider
	Hotels     domain.HotelProvider
	Activities domain.ActivityProvider
	Fallbacks  usecase.Fallbacks
	Timeout    time.Duration
}

// NewTestServer creates a fully wired test server: middleware chain, search
// and itinerary handlers, and an in-memory session store.
func NewTestServer(cfg ServerConfig) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop())

	snapshots := store.NewMemory(time.Hour)
	searchUC := usecase.NewSearchUsecase(
		cfg.Flights, cfg.Hotels, cfg.Activities,
		cfg.Fallbacks, cfg.Timeout, logger.Nop(),
	)
	itineraryUC := usecase.NewItineraryUsecase(snapshots, logger.Nop())

	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewSearchHandler(searchUC),
		httpAdapter.NewItineraryHandler(itineraryUC),
	)

	return &TestServer{
		Echo:  e,
		Store: snapshots,
	}
}

// DefaultFallbacks returns single-item fallback sets for each domain. The
// items carry a "fallback" provider prefix so tests can tell them apart from
// live results.
func DefaultFallbacks() usecase.Fallbacks {
	return usecase.Fallbacks{
		Flights:    func(domain.FlightSearchParams) []domain.Flight { return mock.SampleFlights("fallback", 1) },
		Hotels:     func(domain.HotelSearchParams) []domain.Hotel { return mock.SampleHotels("fallback", 1) },
		Activities: func(domain.ActivitySearchParams) []domain.Activity { return mock.SampleActivities("fallback", 1) },
	}
}

// DefaultFlightBody returns a valid flight search request body.
func DefaultFlightBody() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "LOS",
		"destination":   "SIN",
		"departureDate": testutil.FutureDate(30),
		"passengers":    1,
	}
}

// DefaultHotelBody returns a valid hotel search request body.
func DefaultHotelBody() map[string]interface{} {
	return map[string]interface{}{
		"destination": "Mumbai",
		"checkIn":     testutil.FutureDate(30),
		"checkOut":    testutil.FutureDate(32),
		"guests":      2,
	}
}

// DefaultActivityBody returns a valid activity search request body.
func DefaultActivityBody() map[string]interface{} {
	return map[string]interface{}{
		"destination":  "New York",
		"date":         testutil.FutureDate(30),
		"participants": 2,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	SessionID   string
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.SessionID != "" {
		httpReq.Header.Set("X-Session-ID", req.SessionID)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchFlights posts a flight search for the given session.
func (ts *TestServer) SearchFlights(sessionID string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Body: body, SessionID: sessionID})
}

// SearchHotels posts a hotel search for the given session.
func (ts *TestServer) SearchHotels(sessionID string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/hotels/search", Body: body, SessionID: sessionID})
}

// SearchActivities posts an activity search for the given session.
func (ts *TestServer) SearchActivities(sessionID string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/activities/search", Body: body, SessionID: sessionID})
}

// GetItinerary fetches the itinerary for the given session.
func (ts *TestServer) GetItinerary(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/itinerary", SessionID: sessionID})
}

// AddItem posts an item of the given type to the session's itinerary.
func (ts *TestServer) AddItem(sessionID, itemType string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/itinerary/" + itemType, Body: body, SessionID: sessionID})
}

// RemoveItem deletes an item from the session's itinerary.
func (ts *TestServer) RemoveItem(sessionID, itemType, id string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: "/api/v1/itinerary/" + itemType + "/" + id, SessionID: sessionID})
}

// ClearItinerary deletes the session's entire itinerary.
func (ts *TestServer) ClearItinerary(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: "/api/v1/itinerary", SessionID: sessionID})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// ParseData decodes a successful response body into out.
func (r *Response) ParseData(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// ParseError decodes an error response body.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
