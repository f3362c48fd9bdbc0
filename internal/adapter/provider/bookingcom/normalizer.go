package bookingcom

import (
	"fmt"
	"math"
	"strings"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// destinationResponse mirrors the gateway's searchDestination payload.
type destinationResponse struct {
	Status bool          `json:"status"`
	Data   []destination `json:"data"`
}

type destination struct {
	DestID   string `json:"dest_id"`
	DestType string `json:"dest_type"`
	Name     string `json:"name"`
}

// searchResponse mirrors the gateway's searchHotels payload. Only the
// fields the normalizer reads are declared.
type searchResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Hotels []hotelEntry `json:"hotels"`
	} `json:"data"`
}

type hotelEntry struct {
	Property property `json:"property"`
}

type property struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	City                  string   `json:"wishlistName"`
	CountryCode           string   `json:"countryCode"`
	ReviewScore           float64  `json:"reviewScore"`
	ReviewCount           int      `json:"reviewCount"`
	AccuratePropertyClass float64  `json:"accuratePropertyClass"`
	CheckinDate           string   `json:"checkinDate"`
	CheckoutDate          string   `json:"checkoutDate"`
	PhotoURLs             []string `json:"photoUrls"`
	PriceBreakdown        struct {
		GrossPrice         *price `json:"grossPrice"`
		StrikethroughPrice *price `json:"strikethroughPrice"`
	} `json:"priceBreakdown"`
}

type price struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

var defaultFacilities = []string{"WiFi", "Parking", "Room Service"}

// normalize converts gateway properties into domain hotels, keeping the
// provider's order.
func (a *Adapter) normalize(entries []hotelEntry, params domain.HotelSearchParams) []domain.Hotel {
	hotels := make([]domain.Hotel, 0, len(entries))
	for _, e := range entries {
		hotels = append(hotels, a.normalizeProperty(e.Property, params))
	}
	return hotels
}

func (a *Adapter) normalizeProperty(p property, params domain.HotelSearchParams) domain.Hotel {
	h := domain.Hotel{
		ID:         fmt.Sprintf("%d", p.ID),
		Name:       p.Name,
		Address:    joinAddress(p.City, p.CountryCode),
		Rating:     ratingFromProperty(p),
		Reviews:    p.ReviewCount,
		Price:      "Price not available",
		Nights:     nightsLabel(params),
		CheckIn:    firstNonEmpty(p.CheckinDate, params.CheckIn),
		CheckOut:   firstNonEmpty(p.CheckoutDate, params.CheckOut),
		Facilities: defaultFacilities,
		RoomType:   "Standard Room",
	}
	if p.PriceBreakdown.GrossPrice != nil {
		h.Price = roundedPrice(*p.PriceBreakdown.GrossPrice, a.cfg.Currency)
	}
	if p.PriceBreakdown.StrikethroughPrice != nil {
		h.OriginalPrice = roundedPrice(*p.PriceBreakdown.StrikethroughPrice, a.cfg.Currency)
	}
	if len(p.PhotoURLs) > 0 {
		h.Image = p.PhotoURLs[0]
	}
	return h
}

// ratingFromProperty puts review scores (0-10) on the 0-5 scale, falling
// back to the star class when a property has no reviews yet.
func ratingFromProperty(p property) float64 {
	if p.ReviewScore > 0 {
		return p.ReviewScore / 2
	}
	return p.AccuratePropertyClass
}

// roundedPrice formats a gateway price as a whole-unit display string.
// The gateway's own currency wins over the configured one when present.
func roundedPrice(p price, currency string) string {
	if p.Currency != "" {
		currency = p.Currency
	}
	return domain.FormatPrice(math.Round(p.Value), currency)
}

func nightsLabel(params domain.HotelSearchParams) string {
	rooms := params.Rooms
	if rooms <= 0 {
		rooms = 1
	}
	return fmt.Sprintf("1 night x %d room incl. taxes", rooms)
}

func joinAddress(city, country string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, strings.ToUpper(country))
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
