package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// fencedBlockRegex captures the body of a markdown code fence, with or without
// a json language tag.
var fencedBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls a JSON object out of a raw completion response.
// Extraction order:
//  1. the whole payload, when it is already valid JSON
//  2. the first fenced code block containing an object
//  3. the first-'{'-to-last-'}' substring
//
// Returns ErrNotJSON when none of these yield a parseable object.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrNotJSON)
	}

	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	for _, match := range fencedBlockRegex.FindAllStringSubmatch(trimmed, -1) {
		candidate := strings.TrimSpace(match[1])
		if strings.HasPrefix(candidate, "{") && json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first >= 0 && last > first {
		candidate := trimmed[first : last+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, fmt.Errorf("%w: payload %q", domain.ErrNotJSON, truncate(trimmed, 120))
}

// dayResponse is the JSON shape expected from a day-planning completion.
type dayResponse struct {
	Activities []domain.Activity `json:"activities"`
}

// DecodeActivities turns a completion result into a validated activity list.
// Structured results are decoded directly; raw text goes through ExtractJSON
// first. A missing or empty activities array is a hard per-day failure.
func DecodeActivities(result domain.CompletionResult) ([]domain.Activity, error) {
	payload := result.JSON()
	if !result.IsStructured() {
		extracted, err := ExtractJSON(result.Text())
		if err != nil {
			return nil, err
		}
		payload = extracted
	}

	var day dayResponse
	if err := json.Unmarshal(payload, &day); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotJSON, err)
	}
	if len(day.Activities) == 0 {
		return nil, domain.ErrNoActivities
	}

	for i := range day.Activities {
		day.Activities[i].Category = day.Activities[i].Category.Normalize()
		if day.Activities[i].PriceEstimate < 0 {
			day.Activities[i].PriceEstimate = 0
		}
	}
	return day.Activities, nil
}

// truncate shortens s for log and error payloads.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
