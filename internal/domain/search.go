package domain

import (
	"fmt"
	"regexp"
	"time"
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabinClasses defines the allowed flight cabin classes.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// FlightSearchParams defines the parameters for a flight search request.
type FlightSearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "LOS")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "SIN")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date for round trips
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (default: 1)
	Passengers int `json:"passengers"`

	// CabinClass is economy, premium_economy, business, or first (default: economy)
	CabinClass string `json:"cabinClass,omitempty"`
}

// Validate checks the flight search parameters. It must pass before any
// network call is issued. Returns a wrapped ErrInvalidParams on failure.
func (p *FlightSearchParams) Validate() error {
	if p.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidParams)
	}
	if !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidParams, p.Origin)
	}
	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidParams)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidParams, p.Destination)
	}
	if p.Origin == p.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidParams)
	}
	if err := validateDate("departureDate", p.DepartureDate, true); err != nil {
		return err
	}
	if err := validateDate("returnDate", p.ReturnDate, false); err != nil {
		return err
	}
	if p.ReturnDate != "" && p.ReturnDate < p.DepartureDate {
		return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidParams)
	}
	if p.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidParams)
	}
	if p.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidParams)
	}
	if p.CabinClass != "" && !validCabinClasses[p.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q", ErrInvalidParams, p.CabinClass)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *FlightSearchParams) SetDefaults() {
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.CabinClass == "" {
		p.CabinClass = "economy"
	}
}

// HotelSearchParams defines the parameters for a hotel search request.
type HotelSearchParams struct {
	// Destination is the city or area to stay in
	Destination string `json:"destination"`

	// CheckIn is the arrival date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the departure date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Guests is the number of adults (default: 1)
	Guests int `json:"guests"`

	// Rooms is the number of rooms (default: 1)
	Rooms int `json:"rooms"`

	// SortBy is the optional provider sort key
	SortBy string `json:"sortBy,omitempty"`

	// PriceMin and PriceMax bound the nightly price when both are set
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`

	// PageNumber selects the provider result page (default: 1)
	PageNumber int `json:"pageNumber,omitempty"`
}

// Validate checks the hotel search parameters. A checkOut on or before
// checkIn is rejected here, before any network call is issued.
func (p *HotelSearchParams) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidParams)
	}
	if err := validateDate("checkIn", p.CheckIn, true); err != nil {
		return err
	}
	if err := validateDate("checkOut", p.CheckOut, true); err != nil {
		return err
	}
	if p.CheckOut <= p.CheckIn {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidParams)
	}
	if p.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidParams)
	}
	if p.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalidParams)
	}
	if p.PriceMin != nil && *p.PriceMin < 0 {
		return fmt.Errorf("%w: priceMin must not be negative", ErrInvalidParams)
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMax < *p.PriceMin {
		return fmt.Errorf("%w: priceMax must not be below priceMin", ErrInvalidParams)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *HotelSearchParams) SetDefaults() {
	if p.Guests == 0 {
		p.Guests = 1
	}
	if p.Rooms == 0 {
		p.Rooms = 1
	}
	if p.PageNumber == 0 {
		p.PageNumber = 1
	}
}

// ActivitySearchParams defines the parameters for an activity search request.
type ActivitySearchParams struct {
	// Destination is the city or area to look for activities in
	Destination string `json:"destination"`

	// Date is the desired activity date in YYYY-MM-DD format
	Date string `json:"date"`

	// Participants is the number of people taking part (default: 1)
	Participants int `json:"participants"`

	// Category optionally narrows results ("all" or empty means no filter)
	Category string `json:"category,omitempty"`
}

// Validate checks the activity search parameters.
func (p *ActivitySearchParams) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidParams)
	}
	if err := validateDate("date", p.Date, true); err != nil {
		return err
	}
	if p.Participants < 1 {
		return fmt.Errorf("%w: participants must be at least 1", ErrInvalidParams)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *ActivitySearchParams) SetDefaults() {
	if p.Participants == 0 {
		p.Participants = 1
	}
}

// validateDate checks a YYYY-MM-DD date field. Empty values pass when the
// field is optional.
func validateDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidParams, field)
		}
		return nil
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidParams, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidParams, field, value)
	}
	return nil
}
