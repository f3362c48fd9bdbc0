package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	t.Run("real clock tracks system time", func(t *testing.T) {
		c := NewRealClock()
		before := time.Now()
		now := c.Now()
		after := time.Now()

		assert.False(t, now.Before(before))
		assert.False(t, now.After(after))
	})

	t.Run("mock clock is controllable", func(t *testing.T) {
		c := NewMockClockFromString("2026-08-30T08:35:00Z")
		assert.Equal(t, "08:35", FormatClock(c.Now()))

		c.Advance(80 * time.Minute)
		assert.Equal(t, "09:55", FormatClock(c.Now()))

		fixed := time.Date(2026, 3, 19, 10, 30, 0, 0, time.UTC)
		c.Set(fixed)
		assert.Equal(t, fixed, c.Now())
	})
}

func TestFormatDisplayDate(t *testing.T) {
	// 2026-08-30 is a Sunday.
	d := time.Date(2026, 8, 30, 8, 35, 0, 0, time.UTC)
	assert.Equal(t, "Sun, 30 Aug", FormatDisplayDate(d))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 80, want: "1h 20m"},
		{minutes: 120, want: "2h"},
		{minutes: 45, want: "45m"},
		{minutes: 0, want: "0m"},
		{minutes: -5, want: "0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}

func TestParseFlexible(t *testing.T) {
	t.Run("RFC3339 with offset", func(t *testing.T) {
		got, err := ParseFlexible("2026-08-30T08:35:00+01:00")
		require.NoError(t, err)
		assert.Equal(t, 8, got.Hour())
	})

	t.Run("naive datetime", func(t *testing.T) {
		got, err := ParseFlexible("2026-08-30T08:35:00")
		require.NoError(t, err)
		assert.Equal(t, 35, got.Minute())
	})

	t.Run("bare date", func(t *testing.T) {
		got, err := ParseFlexible("2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, "Sun, 30 Aug", FormatDisplayDate(got))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseFlexible("30/08/2026")
		assert.Error(t, err)
	})
}
