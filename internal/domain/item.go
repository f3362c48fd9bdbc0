// Package domain contains the core business entities and rules for the trip
// planner. These entities are provider-agnostic and form the foundation upon
// which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ItemType identifies which of the three itinerary collections an item
// belongs to.
type ItemType string

// The three kinds of itinerary items.
const (
	ItemTypeFlight   ItemType = "flight"
	ItemTypeHotel    ItemType = "hotel"
	ItemTypeActivity ItemType = "activity"
)

// IsValid checks if the item type is one of the known kinds.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeFlight, ItemTypeHotel, ItemTypeActivity:
		return true
	default:
		return false
	}
}

// ParseItemType parses a string into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown item type %q", ErrInvalidItemType, s)
	}
	return t, nil
}

// NewItemID generates a unique identifier for a newly added itinerary item.
// UUIDs replace the time-plus-random tokens the providers hand out, so items
// added from search results never collide with provider IDs already present.
func NewItemID() string {
	return uuid.New().String()
}

// Flight represents a single flight in the itinerary or in search results.
type Flight struct {
	// ID is a unique identifier for this flight (issued at add time)
	ID string `json:"id"`

	// Airline is the operating airline's display name
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AA-924")
	FlightNumber string `json:"flightNumber"`

	// Departure describes where and when the flight leaves
	Departure FlightPoint `json:"departure"`

	// Arrival describes where and when the flight lands
	Arrival FlightPoint `json:"arrival"`

	// Duration is a human-readable duration string (e.g., "1h 20m")
	Duration string `json:"duration"`

	// Type is the trip-style label (e.g., "Direct", "1 Stop")
	Type string `json:"type"`

	// Price is a formatted currency display string (e.g., "$450.00")
	Price string `json:"price"`

	// Facilities is the ordered list of cabin facilities
	Facilities []string `json:"facilities"`

	// Notes is optional free-text entered by the traveller
	Notes string `json:"notes,omitempty"`
}

// FlightPoint is one endpoint of a flight journey.
type FlightPoint struct {
	// Time is the local clock time display string (e.g., "08:35")
	Time string `json:"time"`

	// Date is the local date display string (e.g., "Sun, 30 Aug")
	Date string `json:"date"`

	// Code is the IATA airport code (e.g., "LOS")
	Code string `json:"code"`

	// City is the optional city or airport display name
	City string `json:"city,omitempty"`
}

// Hotel represents a hotel stay in the itinerary or in search results.
type Hotel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// Rating is the review score on a 0-5 scale
	Rating float64 `json:"rating"`

	// Reviews is the review count backing the rating
	Reviews int `json:"reviews"`

	// Price is a formatted currency display string
	Price string `json:"price"`

	// OriginalPrice is the optional pre-discount display price
	OriginalPrice string `json:"originalPrice,omitempty"`

	// Nights is a free-text stay description (e.g., "1 night x 1 room incl. taxes")
	Nights string `json:"nights"`

	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Facilities []string `json:"facilities"`
	RoomType   string   `json:"roomType,omitempty"`
	Image      string   `json:"image,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Activity represents a bookable activity in the itinerary or in search results.
type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`

	// Duration is a free-text duration description (e.g., "2-3 hours")
	Duration string `json:"duration"`

	Price string `json:"price"`

	// Note is a free-text schedule note (e.g., "10:30 AM on Mar 19")
	Note string `json:"note"`

	// Included describes what the listed price covers
	Included string `json:"included"`

	Category   string   `json:"category,omitempty"`
	Location   string   `json:"location,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Image      string   `json:"image,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// priceValuePattern matches the numeric substring of a formatted price,
// including thousands separators ("$1,234.50" -> "1,234.50").
var priceValuePattern = regexp.MustCompile(`[\d,]+\.?\d*`)

// ExtractPrice parses the numeric value out of a formatted price display
// string. Prices are carried as opaque display strings throughout the system;
// this is the single place that does arithmetic-grade extraction. Returns 0
// when no numeric substring is present.
func ExtractPrice(price string) float64 {
	match := priceValuePattern.FindString(price)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatPrice renders a numeric amount as a display price string for the
// given ISO 4217 currency code (e.g., FormatPrice(450, "USD") -> "$450.00").
func FormatPrice(amount float64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		return fmt.Sprintf("%s %s", strings.ToUpper(currency), formatAmount(amount))
	}
	return symbol + formatAmount(amount)
}

// currencySymbols maps the currency codes the providers quote in to their
// display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦ ",
	"IDR": "Rp ",
}

// formatAmount formats a float with two decimals and comma thousands
// separators ("123450.5" -> "123,450.50").
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
