package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLiveResult(t *testing.T) {
	t.Run("wraps provider items", func(t *testing.T) {
		r := NewLiveResult("skyscrapper", []Flight{testFlight("f1", "$450.00")})
		assert.Equal(t, SourceLive, r.Source)
		assert.Equal(t, "skyscrapper", r.Provider)
		assert.Len(t, r.Items, 1)
		assert.False(t, r.IsFallback())
		assert.Empty(t, r.FailureReason)
	})

	t.Run("nil items become empty list", func(t *testing.T) {
		r := NewLiveResult[Flight]("skyscrapper", nil)
		assert.NotNil(t, r.Items)
		assert.Empty(t, r.Items)
	})
}

func TestNewFallbackResult(t *testing.T) {
	r := NewFallbackResult("bookingcom", []Hotel{testHotel("h1", "$150.00")}, "provider unavailable")

	assert.Equal(t, SourceFallback, r.Source)
	assert.True(t, r.IsFallback())
	assert.Equal(t, "provider unavailable", r.FailureReason)
	assert.Len(t, r.Items, 1)
}
