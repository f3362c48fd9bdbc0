// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LOS")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "SIN")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of passengers (1-9)
	Passengers int `json:"passengers"`

	// CabinClass is the travel class: economy, premium_economy, business, or first (optional)
	CabinClass string `json:"cabinClass,omitempty"`
}

// SearchHotelsRequest represents the request body for hotel search.
type SearchHotelsRequest struct {
	// Destination is the city or area to stay in
	Destination string `json:"destination"`

	// CheckIn is the arrival date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the departure date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Guests is the number of adults (1-9, default 1)
	Guests int `json:"guests"`

	// Rooms is the number of rooms (default 1)
	Rooms int `json:"rooms"`

	// SortBy is the optional provider sort key
	SortBy string `json:"sortBy,omitempty"`

	// PriceMin and PriceMax bound the nightly price when both are set
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`

	// PageNumber selects the provider result page (default 1)
	PageNumber int `json:"pageNumber,omitempty"`
}

// SearchActivitiesRequest represents the request body for activity search.
type SearchActivitiesRequest struct {
	// Destination is the city or area to look for activities in
	Destination string `json:"destination"`

	// Date is the desired activity date in YYYY-MM-DD format
	Date string `json:"date"`

	// Participants is the number of people taking part (default 1)
	Participants int `json:"participants"`

	// Category narrows results; "all" or empty means no filter
	Category string `json:"category,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid travel classes.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true, // Empty is valid (defaults to economy)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the flight search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateEndpoint(errs, "origin", &r.Origin)
	r.validateEndpoint(errs, "destination", &r.Destination)

	if r.Origin != "" && strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "departureDate", r.DepartureDate, true)
	validateDate(errs, "returnDate", r.ReturnDate, false)

	if r.DepartureDate != "" && r.ReturnDate != "" && r.ReturnDate < r.DepartureDate {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}

	if r.Passengers < 0 || r.Passengers > 9 {
		errs.Add("passengers", "passengers must be between 1 and 9")
	}

	if !validCabinClasses[strings.ToLower(r.CabinClass)] {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateEndpoint(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		errs.Add(field, field+" is required")
		return
	}

	code := strings.ToUpper(*value)
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*value = code // Normalize to uppercase
}

// Validate validates the hotel search request and returns any validation errors.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}

	validateDate(errs, "checkIn", r.CheckIn, true)
	validateDate(errs, "checkOut", r.CheckOut, true)

	if r.CheckIn != "" && r.CheckOut != "" && r.CheckOut <= r.CheckIn {
		errs.Add("checkOut", "checkOut must be after checkIn")
	}

	if r.Guests < 0 || r.Guests > 9 {
		errs.Add("guests", "guests must be between 1 and 9")
	}
	if r.Rooms < 0 {
		errs.Add("rooms", "rooms must be at least 1")
	}
	if r.PageNumber < 0 {
		errs.Add("pageNumber", "pageNumber must be at least 1")
	}

	if r.PriceMin != nil && *r.PriceMin < 0 {
		errs.Add("priceMin", "priceMin must be a positive number")
	}
	if r.PriceMax != nil && *r.PriceMax < 0 {
		errs.Add("priceMax", "priceMax must be a positive number")
	}
	if r.PriceMin != nil && r.PriceMax != nil && *r.PriceMin > *r.PriceMax {
		errs.Add("priceMax", "priceMax must be greater than or equal to priceMin")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the activity search request and returns any validation errors.
func (r *SearchActivitiesRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}

	validateDate(errs, "date", r.Date, true)

	if r.Participants < 0 {
		errs.Add("participants", "participants must be at least 1")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDate checks a YYYY-MM-DD field. Optional empty values pass.
func validateDate(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}
