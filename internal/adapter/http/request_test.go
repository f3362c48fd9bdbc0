package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlights() SearchFlightsRequest {
	return SearchFlightsRequest{
		Origin:        "LOS",
		Destination:   "SIN",
		DepartureDate: "2026-09-01",
		Passengers:    2,
		CabinClass:    "economy",
	}
}

func TestSearchFlightsRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SearchFlightsRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *SearchFlightsRequest) {},
		},
		{
			name:   "lowercase codes normalized",
			mutate: func(r *SearchFlightsRequest) { r.Origin = "los"; r.Destination = "sin" },
		},
		{
			name:   "zero passengers defaults later",
			mutate: func(r *SearchFlightsRequest) { r.Passengers = 0 },
		},
		{
			name:      "missing origin",
			mutate:    func(r *SearchFlightsRequest) { r.Origin = "" },
			wantField: "origin",
		},
		{
			name:      "origin not IATA",
			mutate:    func(r *SearchFlightsRequest) { r.Origin = "LAGOS" },
			wantField: "origin",
		},
		{
			name:      "same origin and destination",
			mutate:    func(r *SearchFlightsRequest) { r.Destination = "los" },
			wantField: "destination",
		},
		{
			name:      "bad date format",
			mutate:    func(r *SearchFlightsRequest) { r.DepartureDate = "01-09-2026" },
			wantField: "departureDate",
		},
		{
			name:      "impossible date",
			mutate:    func(r *SearchFlightsRequest) { r.DepartureDate = "2026-02-30" },
			wantField: "departureDate",
		},
		{
			name:      "return before departure",
			mutate:    func(r *SearchFlightsRequest) { r.ReturnDate = "2026-08-30" },
			wantField: "returnDate",
		},
		{
			name:      "too many passengers",
			mutate:    func(r *SearchFlightsRequest) { r.Passengers = 10 },
			wantField: "passengers",
		},
		{
			name:      "unknown cabin class",
			mutate:    func(r *SearchFlightsRequest) { r.CabinClass = "luxury" },
			wantField: "cabinClass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFlights()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs, ok := err.(*ValidationErrors)
			require.True(t, ok)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

// Every class the request layer accepts must also pass the domain validator,
// so a request that clears field validation never bounces off the usecase.
func TestSearchFlightsRequestCabinClassesAccepted(t *testing.T) {
	for _, class := range []string{"", "economy", "premium_economy", "business", "first"} {
		t.Run("class "+class, func(t *testing.T) {
			req := validFlights()
			req.CabinClass = class
			require.NoError(t, req.Validate())

			params := ToFlightParams(&req)
			params.SetDefaults()
			assert.NoError(t, params.Validate())
		})
	}
}

func TestSearchFlightsRequestNormalizesCodes(t *testing.T) {
	req := validFlights()
	req.Origin = "los"
	req.Destination = "sin"

	require.NoError(t, req.Validate())
	assert.Equal(t, "LOS", req.Origin)
	assert.Equal(t, "SIN", req.Destination)
}

func TestSearchHotelsRequestValidate(t *testing.T) {
	valid := func() SearchHotelsRequest {
		return SearchHotelsRequest{
			Destination: "Mumbai",
			CheckIn:     "2026-09-01",
			CheckOut:    "2026-09-03",
			Guests:      2,
			Rooms:       1,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*SearchHotelsRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *SearchHotelsRequest) {},
		},
		{
			name:      "missing destination",
			mutate:    func(r *SearchHotelsRequest) { r.Destination = "   " },
			wantField: "destination",
		},
		{
			name:      "missing check-in",
			mutate:    func(r *SearchHotelsRequest) { r.CheckIn = "" },
			wantField: "checkIn",
		},
		{
			name:      "check-out equal to check-in",
			mutate:    func(r *SearchHotelsRequest) { r.CheckOut = r.CheckIn },
			wantField: "checkOut",
		},
		{
			name:      "check-out before check-in",
			mutate:    func(r *SearchHotelsRequest) { r.CheckOut = "2026-08-30" },
			wantField: "checkOut",
		},
		{
			name:      "negative price bound",
			mutate:    func(r *SearchHotelsRequest) { min := -1.0; r.PriceMin = &min },
			wantField: "priceMin",
		},
		{
			name: "inverted price range",
			mutate: func(r *SearchHotelsRequest) {
				min, max := 300.0, 50.0
				r.PriceMin, r.PriceMax = &min, &max
			},
			wantField: "priceMax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs, ok := err.(*ValidationErrors)
			require.True(t, ok)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchActivitiesRequestValidate(t *testing.T) {
	t.Run("valid with optional fields empty", func(t *testing.T) {
		req := SearchActivitiesRequest{Destination: "New York", Date: "2026-09-15"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing destination", func(t *testing.T) {
		req := SearchActivitiesRequest{Date: "2026-09-15"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.(*ValidationErrors).ToMap(), "destination")
	})

	// A date-less request must fail here with a field-level error, not reach
	// the usecase and bounce off the domain validator.
	t.Run("missing date", func(t *testing.T) {
		req := SearchActivitiesRequest{Destination: "New York"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.(*ValidationErrors).ToMap(), "date")
	})

	t.Run("bad date", func(t *testing.T) {
		req := SearchActivitiesRequest{Destination: "New York", Date: "next friday"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.(*ValidationErrors).ToMap(), "date")
	})
}

func TestValidationErrorsAggregate(t *testing.T) {
	req := SearchFlightsRequest{}
	err := req.Validate()
	require.Error(t, err)

	verrs := err.(*ValidationErrors)
	assert.True(t, verrs.HasErrors())
	// Missing origin, destination, and departureDate at minimum.
	assert.GreaterOrEqual(t, len(verrs.Errors), 3)
	assert.NotEmpty(t, verrs.Error())
}
