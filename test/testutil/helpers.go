// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"testing"
	"time"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// DayJSON builds a structured day-plan payload with one activity per title.
// Activities are spread across the day starting at 09:00, two hours apart,
// all in the given category.
func DayJSON(t *testing.T, category string, titles ...string) string {
	t.Helper()

	type activity struct {
		Time     string `json:"time"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
	}

	activities := make([]activity, len(titles))
	for i, title := range titles {
		activities[i].Time = time.Date(2000, 1, 1, 9+i*2, 0, 0, 0, time.UTC).Format("15:04")
		activities[i].Title = title
		activities[i].Category = category
		activities[i].Location.Name = title
	}

	payload, err := json.Marshal(map[string]interface{}{"activities": activities})
	if err != nil {
		t.Fatalf("Failed to build day payload: %v", err)
	}
	return string(payload)
}

// FlightJSON builds a structured flight-discovery payload with the given
// airline and arrival/departure times at the destination.
func FlightJSON(t *testing.T, airline, arrivalTime, departureTime string) string {
	t.Helper()

	payload, err := json.Marshal(map[string]interface{}{
		"outbound_flight": map[string]interface{}{
			"airline":          airline,
			"flight_number":    "TW 101",
			"departure_time":   "08:00",
			"arrival_time":     arrivalTime,
			"date":             "2026-05-01",
			"price_per_person": 250.0,
		},
		"return_flight": map[string]interface{}{
			"airline":          airline,
			"flight_number":    "TW 102",
			"departure_time":   departureTime,
			"arrival_time":     "23:30",
			"date":             "2026-05-03",
			"price_per_person": 250.0,
		},
	})
	if err != nil {
		t.Fatalf("Failed to build flight payload: %v", err)
	}
	return string(payload)
}
