package http

import (
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/usecase"
)

// SearchMetadataDTO describes how a search result set was produced. Fallback
// result sets are explicitly tagged so clients can tell curated samples from
// live provider data.
type SearchMetadataDTO struct {
	// Provider is the name of the provider that was queried
	Provider string `json:"provider"`

	// Source is "live" or "fallback"
	Source string `json:"source"`

	// FailureReason records why fallback data was served, when it was
	FailureReason string `json:"failure_reason,omitempty"`

	// Sequence is the per-session search sequence number
	Sequence uint64 `json:"sequence"`

	// TotalResults is the number of items returned
	TotalResults int `json:"total_results"`

	// SearchTimeMs is the provider call duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// FlightSearchResponseDTO is the response body for flight search.
type FlightSearchResponseDTO struct {
	SearchCriteria domain.FlightSearchParams `json:"search_criteria"`
	Metadata       SearchMetadataDTO         `json:"metadata"`
	Flights        []domain.Flight           `json:"flights"`
}

// HotelSearchResponseDTO is the response body for hotel search.
type HotelSearchResponseDTO struct {
	SearchCriteria domain.HotelSearchParams `json:"search_criteria"`
	Metadata       SearchMetadataDTO        `json:"metadata"`
	Hotels         []domain.Hotel           `json:"hotels"`
}

// ActivitySearchResponseDTO is the response body for activity search.
type ActivitySearchResponseDTO struct {
	SearchCriteria domain.ActivitySearchParams `json:"search_criteria"`
	Metadata       SearchMetadataDTO           `json:"metadata"`
	Activities     []domain.Activity           `json:"activities"`
}

// CategoriesResponseDTO is the response body for activity category listing.
type CategoriesResponseDTO struct {
	Categories []domain.Category `json:"categories"`
}

// ItineraryResponseDTO is the response body for itinerary reads and mutations.
type ItineraryResponseDTO struct {
	Flights    []domain.Flight   `json:"flights"`
	Hotels     []domain.Hotel    `json:"hotels"`
	Activities []domain.Activity `json:"activities"`
	TotalItems int               `json:"total_items"`
	TotalCost  float64           `json:"total_cost"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SummaryResponseDTO is the response body for the itinerary summary.
type SummaryResponseDTO struct {
	FlightCount   int                     `json:"flight_count"`
	HotelCount    int                     `json:"hotel_count"`
	ActivityCount int                     `json:"activity_count"`
	TotalItems    int                     `json:"total_items"`
	TotalCost     float64                 `json:"total_cost"`
	Validation    domain.ValidationResult `json:"validation"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// ToSummaryResponseDTO converts a usecase summary to its response body.
func ToSummaryResponseDTO(s *usecase.Summary) *SummaryResponseDTO {
	if s == nil {
		return nil
	}
	return &SummaryResponseDTO{
		FlightCount:   s.FlightCount,
		HotelCount:    s.HotelCount,
		ActivityCount: s.ActivityCount,
		TotalItems:    s.TotalItems,
		TotalCost:     s.TotalCost,
		Validation:    s.Validation,
		UpdatedAt:     s.UpdatedAt,
	}
}
