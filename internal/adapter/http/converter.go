// Package http provides the HTTP handler layer for the trip planner API.
package http

import (
	"strings"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// ToFlightParams converts a SearchFlightsRequest to domain search params.
func ToFlightParams(req *SearchFlightsRequest) domain.FlightSearchParams {
	return domain.FlightSearchParams{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		CabinClass:    strings.ToLower(req.CabinClass),
	}
}

// ToHotelParams converts a SearchHotelsRequest to domain search params.
func ToHotelParams(req *SearchHotelsRequest) domain.HotelSearchParams {
	return domain.HotelSearchParams{
		Destination: strings.TrimSpace(req.Destination),
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		Rooms:       req.Rooms,
		SortBy:      req.SortBy,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		PageNumber:  req.PageNumber,
	}
}

// ToActivityParams converts a SearchActivitiesRequest to domain search params.
func ToActivityParams(req *SearchActivitiesRequest) domain.ActivitySearchParams {
	return domain.ActivitySearchParams{
		Destination:  strings.TrimSpace(req.Destination),
		Date:         req.Date,
		Participants: req.Participants,
		Category:     req.Category,
	}
}

// toMetadata builds the response metadata block from a search result.
func toMetadata[T any](result *domain.SearchResult[T]) SearchMetadataDTO {
	return SearchMetadataDTO{
		Provider:      result.Provider,
		Source:        string(result.Source),
		FailureReason: result.FailureReason,
		Sequence:      result.Sequence,
		TotalResults:  len(result.Items),
		SearchTimeMs:  result.DurationMs,
	}
}

// ToFlightSearchResponse converts a flight search result to its response body.
func ToFlightSearchResponse(params domain.FlightSearchParams, result *domain.SearchResult[domain.Flight]) *FlightSearchResponseDTO {
	return &FlightSearchResponseDTO{
		SearchCriteria: params,
		Metadata:       toMetadata(result),
		Flights:        result.Items,
	}
}

// ToHotelSearchResponse converts a hotel search result to its response body.
func ToHotelSearchResponse(params domain.HotelSearchParams, result *domain.SearchResult[domain.Hotel]) *HotelSearchResponseDTO {
	return &HotelSearchResponseDTO{
		SearchCriteria: params,
		Metadata:       toMetadata(result),
		Hotels:         result.Items,
	}
}

// ToActivitySearchResponse converts an activity search result to its response body.
func ToActivitySearchResponse(params domain.ActivitySearchParams, result *domain.SearchResult[domain.Activity]) *ActivitySearchResponseDTO {
	return &ActivitySearchResponseDTO{
		SearchCriteria: params,
		Metadata:       toMetadata(result),
		Activities:     result.Items,
	}
}

// ToItineraryResponse converts an itinerary to its response body.
func ToItineraryResponse(it *domain.Itinerary) *ItineraryResponseDTO {
	if it == nil {
		return nil
	}
	return &ItineraryResponseDTO{
		Flights:    it.Flights,
		Hotels:     it.Hotels,
		Activities: it.Activities,
		TotalItems: it.Count(),
		TotalCost:  it.TotalCost(),
		UpdatedAt:  it.UpdatedAt,
	}
}
