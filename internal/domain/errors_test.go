package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		underlyingErr error
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "error message includes provider and underlying error",
			provider:      "skyscrapper",
			underlyingErr: errors.New("connection failed"),
			wantContains:  []string{"skyscrapper", "connection failed"},
			wantRetryable: false,
		},
		{
			name:          "error message with different provider",
			provider:      "bookingcom",
			underlyingErr: errors.New("decode failed"),
			wantContains:  []string{"bookingcom", "decode failed"},
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError(tt.provider, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableProviderError(t *testing.T) {
	underlying := errors.New("temporary network failure")
	err := NewRetryableProviderError("skyscrapper", underlying)

	assert.Contains(t, err.Error(), "skyscrapper")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, err.Retryable)
}

func TestNewProviderTimeoutError(t *testing.T) {
	err := NewProviderTimeoutError("bookingcom")

	assert.Contains(t, err.Error(), "bookingcom")
	assert.True(t, errors.Is(err, ErrProviderTimeout))
	assert.True(t, err.Retryable)
}

func TestNewProviderUnavailableError(t *testing.T) {
	err := NewProviderUnavailableError("skyscrapper")

	assert.Contains(t, err.Error(), "skyscrapper")
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
	assert.True(t, err.Retryable)
}

func TestIsInvalidParams(t *testing.T) {
	p := HotelSearchParams{Destination: "Lagos", CheckIn: "2026-09-15", CheckOut: "2026-09-15", Guests: 1, Rooms: 1}
	err := p.Validate()

	assert.True(t, IsInvalidParams(err))
	assert.False(t, IsInvalidParams(errors.New("other")))
	assert.False(t, IsInvalidParams(nil))
}
