package localguide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

func TestSearchReturnsFullCatalog(t *testing.T) {
	a := NewAdapter()

	activities, err := a.Search(context.Background(), domain.ActivitySearchParams{
		Destination:  "New York",
		Date:         "2026-08-30",
		Participants: 2,
	})
	require.NoError(t, err)
	require.Len(t, activities, 3)

	first := activities[0]
	assert.Equal(t, "activity-1", first.ID)
	assert.Equal(t, "The Museum of Modern Art", first.Name)
	assert.Equal(t, "$25.00", first.Price)
	assert.Equal(t, "New York", first.Location)
	assert.Equal(t, "10:30 AM on Sun, 30 Aug", first.Note)
	assert.Equal(t, "Museums & Culture", first.Category)
	assert.NotEmpty(t, first.Highlights)
}

func TestSearchCategoryFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{
			name:     "empty filter keeps everything",
			category: "",
			want:     []string{"The Museum of Modern Art", "Central Park Walking Tour", "Food Market Tour"},
		},
		{
			name:     "all keeps everything",
			category: "all",
			want:     []string{"The Museum of Modern Art", "Central Park Walking Tour", "Food Market Tour"},
		},
		{
			name:     "short value matches by substring",
			category: "food",
			want:     []string{"Food Market Tour"},
		},
		{
			name:     "case insensitive",
			category: "MUSEUMS",
			want:     []string{"The Museum of Modern Art"},
		},
		{
			name:     "no match yields empty",
			category: "wellness",
			want:     []string{},
		},
	}

	a := NewAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities, err := a.Search(context.Background(), domain.ActivitySearchParams{
				Destination: "New York",
				Category:    tt.category,
			})
			require.NoError(t, err)

			names := make([]string, 0, len(activities))
			for _, act := range activities {
				names = append(names, act.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSearchWithoutDate(t *testing.T) {
	activities, err := NewAdapter().Search(context.Background(), domain.ActivitySearchParams{
		Destination: "New York",
	})
	require.NoError(t, err)
	require.NotEmpty(t, activities)
	assert.Equal(t, "Time to be confirmed", activities[0].Note)
}

func TestSearchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter().Search(ctx, domain.ActivitySearchParams{Destination: "New York"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategories(t *testing.T) {
	cats := NewAdapter().Categories()

	require.Len(t, cats, 8)
	assert.Equal(t, domain.Category{Value: "all", Label: "All Categories"}, cats[0])
	assert.Equal(t, domain.Category{Value: "wellness", Label: "Wellness & Spa"}, cats[7])

	// Mutating the returned slice must not affect later calls.
	cats[0].Label = "mutated"
	assert.Equal(t, "All Categories", NewAdapter().Categories()[0].Label)
}
