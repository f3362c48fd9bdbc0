// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/middleware"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/response"
	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/usecase"
)

// SearchHandler handles HTTP requests for the search endpoints.
type SearchHandler struct {
	useCase usecase.SearchService
}

// NewSearchHandler creates a new SearchHandler with the given use case.
func NewSearchHandler(uc usecase.SearchService) *SearchHandler {
	return &SearchHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	params := ToFlightParams(&req)
	params.SetDefaults()

	result, err := h.useCase.SearchFlights(c.Request().Context(), middleware.GetSessionID(c), params)
	if err != nil {
		return handleError(c, err)
	}
	return response.SearchResults(c, ToFlightSearchResponse(params, result))
}

// SearchHotels handles POST /api/v1/hotels/search
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	params := ToHotelParams(&req)
	params.SetDefaults()

	result, err := h.useCase.SearchHotels(c.Request().Context(), middleware.GetSessionID(c), params)
	if err != nil {
		return handleError(c, err)
	}
	return response.SearchResults(c, ToHotelSearchResponse(params, result))
}

// SearchActivities handles POST /api/v1/activities/search
func (h *SearchHandler) SearchActivities(c echo.Context) error {
	var req SearchActivitiesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	params := ToActivityParams(&req)
	params.SetDefaults()

	result, err := h.useCase.SearchActivities(c.Request().Context(), middleware.GetSessionID(c), params)
	if err != nil {
		return handleError(c, err)
	}
	return response.SearchResults(c, ToActivitySearchResponse(params, result))
}

// ActivityCategories handles GET /api/v1/activities/categories
func (h *SearchHandler) ActivityCategories(c echo.Context) error {
	return response.OK(c, &CategoriesResponseDTO{
		Categories: h.useCase.ActivityCategories(),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// ItineraryHandler handles HTTP requests for the itinerary endpoints.
type ItineraryHandler struct {
	useCase usecase.ItineraryService
}

// NewItineraryHandler creates a new ItineraryHandler with the given use case.
func NewItineraryHandler(uc usecase.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{
		useCase: uc,
	}
}

// Get handles GET /api/v1/itinerary
func (h *ItineraryHandler) Get(c echo.Context) error {
	it, err := h.useCase.Get(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToItineraryResponse(it))
}

// Summary handles GET /api/v1/itinerary/summary
func (h *ItineraryHandler) Summary(c echo.Context) error {
	s, err := h.useCase.Summarize(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToSummaryResponseDTO(s))
}

// AddItem handles POST /api/v1/itinerary/:type
// The body is the item to add, shaped per the type in the path.
func (h *ItineraryHandler) AddItem(c echo.Context) error {
	itemType, err := domain.ParseItemType(c.Param("type"))
	if err != nil {
		return response.BadRequest(c, "item type must be one of: flight, hotel, activity")
	}

	ctx := c.Request().Context()
	sessionID := middleware.GetSessionID(c)

	var it *domain.Itinerary
	switch itemType {
	case domain.ItemTypeFlight:
		var f domain.Flight
		if err := c.Bind(&f); err != nil {
			return response.InvalidRequestBody(c)
		}
		it, err = h.useCase.AddFlight(ctx, sessionID, f)
	case domain.ItemTypeHotel:
		var hotel domain.Hotel
		if err := c.Bind(&hotel); err != nil {
			return response.InvalidRequestBody(c)
		}
		it, err = h.useCase.AddHotel(ctx, sessionID, hotel)
	case domain.ItemTypeActivity:
		var a domain.Activity
		if err := c.Bind(&a); err != nil {
			return response.InvalidRequestBody(c)
		}
		it, err = h.useCase.AddActivity(ctx, sessionID, a)
	}
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, ToItineraryResponse(it))
}

// RemoveItem handles DELETE /api/v1/itinerary/:type/:id
// Removing an id that is not present still succeeds.
func (h *ItineraryHandler) RemoveItem(c echo.Context) error {
	itemType, err := domain.ParseItemType(c.Param("type"))
	if err != nil {
		return response.BadRequest(c, "item type must be one of: flight, hotel, activity")
	}

	it, err := h.useCase.RemoveItem(c.Request().Context(), middleware.GetSessionID(c), itemType, c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToItineraryResponse(it))
}

// Clear handles DELETE /api/v1/itinerary
func (h *ItineraryHandler) Clear(c echo.Context) error {
	if err := h.useCase.Clear(c.Request().Context(), middleware.GetSessionID(c)); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	// A newer search already delivered for this session
	if errors.Is(err, usecase.ErrStaleResult) {
		return response.StaleRequest(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidParams) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
