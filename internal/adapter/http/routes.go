// Package http provides the HTTP handler layer for the trip planner API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, sh *SearchHandler, ih *ItineraryHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", sh.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Search endpoints
	api.POST("/flights/search", sh.SearchFlights)
	api.POST("/hotels/search", sh.SearchHotels)
	api.POST("/activities/search", sh.SearchActivities)
	api.GET("/activities/categories", sh.ActivityCategories)

	// Itinerary endpoints
	itinerary := api.Group("/itinerary")
	itinerary.GET("", ih.Get)
	itinerary.GET("/summary", ih.Summary)
	itinerary.POST("/:type", ih.AddItem)
	itinerary.DELETE("/:type/:id", ih.RemoveItem)
	itinerary.DELETE("", ih.Clear)
}
