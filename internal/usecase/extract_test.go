package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  error
	}{
		{
			name:     "bare JSON object",
			raw:      `{"activities": []}`,
			expected: `{"activities": []}`,
		},
		{
			name:     "bare JSON object with surrounding whitespace",
			raw:      "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "fenced block with json tag",
			raw:      "Here is your plan:\n```json\n{\"a\": 1}\n```\nEnjoy!",
			expected: `{"a": 1}`,
		},
		{
			name:     "fenced block without language tag",
			raw:      "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "object embedded in prose",
			raw:      `Sure! The result is {"a": {"b": 2}} as requested.`,
			expected: `{"a": {"b": 2}}`,
		},
		{
			name:     "prefers fenced block over loose braces",
			raw:      "ignore {broken\n```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:    "empty payload",
			raw:     "   ",
			wantErr: domain.ErrNotJSON,
		},
		{
			name:    "no JSON at all",
			raw:     "I could not produce a plan for this request.",
			wantErr: domain.ErrNotJSON,
		},
		{
			name:    "braces but invalid JSON",
			raw:     "{this is not json}",
			wantErr: domain.ErrNotJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestDecodeActivities_Structured(t *testing.T) {
	payload := `{"activities": [
		{"time": "09:00", "title": "Louvre Museum", "location": {"name": "Louvre"}, "category": "attraction", "price_estimate": 22},
		{"time": "13:00", "title": "Le Comptoir", "location": {"name": "Le Comptoir"}, "category": "restaurant", "price_estimate": 45}
	]}`

	activities, err := DecodeActivities(domain.StructuredResult(json.RawMessage(payload)))

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "Louvre Museum", activities[0].Title)
	assert.Equal(t, domain.CategoryAttraction, activities[0].Category)
	assert.Equal(t, domain.CategoryRestaurant, activities[1].Category)
}

func TestDecodeActivities_TextWithFence(t *testing.T) {
	raw := "```json\n{\"activities\": [{\"time\": \"10:00\", \"title\": \"Walk\", \"location\": {\"name\": \"Old Town\"}, \"category\": \"sightseeing\"}]}\n```"

	activities, err := DecodeActivities(domain.TextResult(raw))

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Walk", activities[0].Title)
}

func TestDecodeActivities_EmptyActivities(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty array", payload: `{"activities": []}`},
		{name: "missing key", payload: `{"days": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeActivities(domain.StructuredResult(json.RawMessage(tt.payload)))
			assert.ErrorIs(t, err, domain.ErrNoActivities)
		})
	}
}

func TestDecodeActivities_NormalizesFields(t *testing.T) {
	payload := `{"activities": [
		{"time": "10:00", "title": "Mystery stop", "location": {"name": "Somewhere"}, "category": "museum-visit", "price_estimate": -10}
	]}`

	activities, err := DecodeActivities(domain.StructuredResult(json.RawMessage(payload)))

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, domain.CategoryOther, activities[0].Category, "unknown category normalizes to other")
	assert.Equal(t, 0.0, activities[0].PriceEstimate, "negative prices clamp to zero")
}

func TestDecodeActivities_UnparseableText(t *testing.T) {
	_, err := DecodeActivities(domain.TextResult("no json here"))
	assert.ErrorIs(t, err, domain.ErrNotJSON)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdefgh", 3))
}
