package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2026-05-01T08:00:00Z",
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2026-05-01T08:00:00+02:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2026-05-01",
			wantYear:  2026,
			wantMonth: time.May,
			wantDay:   1,
		},
		{
			name:      "january date",
			dateStr:   "2026-01-01",
			wantYear:  2026,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("hello")
		require.NotNil(t, strVal)
		assert.Equal(t, "hello", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(3.14)
		require.NotNil(t, floatVal)
		assert.Equal(t, 3.14, *floatVal)
	})
}

func TestDayJSON(t *testing.T) {
	payload := DayJSON(t, "restaurant", "Cafe de Flore", "Le Comptoir")

	var decoded struct {
		Activities []struct {
			Time     string `json:"time"`
			Title    string `json:"title"`
			Category string `json:"category"`
			Location struct {
				Name string `json:"name"`
			} `json:"location"`
		} `json:"activities"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded.Activities, 2)

	assert.Equal(t, "09:00", decoded.Activities[0].Time)
	assert.Equal(t, "Cafe de Flore", decoded.Activities[0].Title)
	assert.Equal(t, "restaurant", decoded.Activities[0].Category)
	assert.Equal(t, "Cafe de Flore", decoded.Activities[0].Location.Name)

	assert.Equal(t, "11:00", decoded.Activities[1].Time)
	assert.Equal(t, "Le Comptoir", decoded.Activities[1].Title)
}

func TestFlightJSON(t *testing.T) {
	payload := FlightJSON(t, "Air France", "14:00", "18:00")

	var decoded struct {
		Outbound struct {
			Airline     string  `json:"airline"`
			ArrivalTime string  `json:"arrival_time"`
			Price       float64 `json:"price_per_person"`
		} `json:"outbound_flight"`
		Return struct {
			DepartureTime string `json:"departure_time"`
		} `json:"return_flight"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	assert.Equal(t, "Air France", decoded.Outbound.Airline)
	assert.Equal(t, "14:00", decoded.Outbound.ArrivalTime)
	assert.Equal(t, 250.0, decoded.Outbound.Price)
	assert.Equal(t, "18:00", decoded.Return.DepartureTime)
}
