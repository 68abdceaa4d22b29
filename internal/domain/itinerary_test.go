package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryRestaurant, true},
		{CategoryAttraction, true},
		{CategorySightseeing, true},
		{CategoryTransport, true},
		{CategoryHotel, true},
		{CategoryOther, true},
		{Category("museum"), false},
		{Category(""), false},
		{Category("RESTAURANT"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestCategory_Normalize(t *testing.T) {
	assert.Equal(t, CategoryHotel, CategoryHotel.Normalize())
	assert.Equal(t, CategoryOther, Category("brunch-spot").Normalize())
	assert.Equal(t, CategoryOther, Category("").Normalize())
}

func TestCategoryValues(t *testing.T) {
	values := CategoryValues()

	assert.Len(t, values, 6)
	assert.Equal(t, "restaurant", values[0])
	assert.Contains(t, values, "hotel")
	assert.Contains(t, values, "other")
}

func TestItineraryDay_JSONShape(t *testing.T) {
	day := ItineraryDay{
		DayNumber: 2,
		Date:      "2025-06-02",
		Activities: []Activity{
			{
				Time:  "09:00",
				Title: "Louvre visit",
				Location: Location{
					Name:      "Musée du Louvre",
					Latitude:  48.8606,
					Longitude: 2.3376,
				},
				Category:      CategoryAttraction,
				PriceEstimate: 22,
			},
		},
	}

	raw, err := json.Marshal(day)
	require.NoError(t, err)

	// Wire field names are the snake_case contract consumed by UI layers.
	assert.Contains(t, string(raw), `"day_number":2`)
	assert.Contains(t, string(raw), `"price_estimate":22`)
	assert.Contains(t, string(raw), `"category":"attraction"`)
}
