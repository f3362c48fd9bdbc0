package bookingcom

import "github.com/tripdeck/travel-itinerary-service/internal/domain"

// FallbackHotels returns the curated hotel set shown when the live
// provider cannot be reached. Stay dates echo the request.
func FallbackHotels(params domain.HotelSearchParams) []domain.Hotel {
	return []domain.Hotel{
		{
			ID:            "fallback-hotel-1",
			Name:          "Riviera Resort, Lekki",
			Address:       "18 Kenneth Agbakuru Street, Off Access Bank Admiralty Way, Lekki Phase1",
			Rating:        4.5,
			Reviews:       430,
			Price:         "$150.00",
			OriginalPrice: "$200.00",
			Nights:        "1 night x 1 room incl. taxes",
			CheckIn:       params.CheckIn,
			CheckOut:      params.CheckOut,
			Facilities:    []string{"Pool", "WiFi", "Parking", "Restaurant", "Spa", "Gym"},
			RoomType:      "Deluxe King Room",
		},
		{
			ID:            "fallback-hotel-2",
			Name:          "Lagos Continental Hotel",
			Address:       "52A Kofo Abayomi Street, Victoria Island, Lagos",
			Rating:        4.2,
			Reviews:       287,
			Price:         "$120.00",
			OriginalPrice: "$150.00",
			Nights:        "1 night x 1 room incl. taxes",
			CheckIn:       params.CheckIn,
			CheckOut:      params.CheckOut,
			Facilities:    []string{"WiFi", "Restaurant", "Bar", "Conference Room", "Laundry"},
			RoomType:      "Standard Double Room",
		},
	}
}
