package usecase

import (
	"fmt"
	"strings"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// Offsets applied to flight times when deriving activity windows.
const (
	// arrivalBufferHours is added to the arrival hour before the first
	// activity of day one may start.
	arrivalBufferHours = 2

	// departureBufferHours is subtracted from the departure hour; the last
	// activity of the final day must end by then.
	departureBufferHours = 3
)

// freshSystemPrompt frames a from-scratch planning run.
const freshSystemPrompt = `You are an expert travel planner. You build realistic,
well-paced daily itineraries with concrete venues, honest time estimates, and
activities matched to the travellers and budget. Emit activities in time order.`

// replanSystemPrompt frames a revision run. Untouched days must survive.
const replanSystemPrompt = `You are an expert travel planner revising part of an
existing itinerary. Regenerate only the requested day. Preserve the spirit of the
days that are not being changed, and never repeat venues already used elsewhere
in the trip. Emit activities in time order.`

// tripSummary renders the request facts shared by every prompt.
func tripSummary(trip domain.TripRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip: %s, %s to %s (%d days).\n",
		trip.Destination, trip.StartDate, trip.EndDate, trip.TotalDays())
	fmt.Fprintf(&b, "Travellers: %d adults", trip.NumAdults)
	if trip.NumChildren > 0 {
		fmt.Fprintf(&b, ", %d children", trip.NumChildren)
	}
	b.WriteString(".\n")
	if trip.BudgetMax > 0 {
		fmt.Fprintf(&b, "Total budget: %.0f-%.0f.\n", trip.BudgetMin, trip.BudgetMax)
	}
	if trip.TripType != "" {
		fmt.Fprintf(&b, "Trip style: %s.\n", trip.TripType)
	}
	return b.String()
}

// flightSearchPrompt asks the completion service for a round-trip flight in a
// fixed JSON shape.
func flightSearchPrompt(trip domain.TripRequest) string {
	var b strings.Builder
	b.WriteString("Find a realistic round-trip flight for this trip.\n")
	if trip.Origin != "" {
		fmt.Fprintf(&b, "From: %s.\n", trip.Origin)
	}
	fmt.Fprintf(&b, "To: %s.\nOutbound date: %s. Return date: %s. Passengers: %d.\n",
		trip.Destination, trip.StartDate, trip.EndDate, trip.Travellers())
	b.WriteString(`Respond with JSON only, in exactly this shape:
{"outbound_flight": {"airline": "...", "flight_number": "...", "departure_time": "HH:MM", "arrival_time": "HH:MM", "duration": "...", "date": "YYYY-MM-DD", "price_per_person": 0},
 "return_flight": {"airline": "...", "flight_number": "...", "departure_time": "HH:MM", "arrival_time": "HH:MM", "duration": "...", "date": "YYYY-MM-DD", "price_per_person": 0}}`)
	return b.String()
}

// dayPromptInput collects everything a single day's prompt depends on.
type dayPromptInput struct {
	trip      domain.TripRequest
	dayNumber int
	date      string
	totalDays int
	flight    domain.FlightInfo
	replan    bool
	// digest summarizes previously planned days for continuity
	digest []string
	// banned holds venue names that must not repeat
	banned banList
}

// buildDayPrompt assembles the full prompt for one day's generation call.
func buildDayPrompt(in dayPromptInput) string {
	var b strings.Builder

	if in.replan {
		b.WriteString(replanSystemPrompt)
	} else {
		b.WriteString(freshSystemPrompt)
	}
	b.WriteString("\n\n")
	b.WriteString(tripSummary(in.trip))

	fmt.Fprintf(&b, "\nPlan day %d of %d (%s).\n", in.dayNumber, in.totalDays, in.date)

	writeFlightConstraints(&b, in)
	writeDigest(&b, in.digest)
	writeBanList(&b, "restaurants", in.banned.restaurants)
	writeBanList(&b, "attractions", in.banned.attractions)

	b.WriteString(`
Respond with JSON only: {"activities": [{"time": "HH:MM", "title": "...", "description": "...", "location": {"name": "...", "address": "...", "latitude": 0, "longitude": 0}, "category": "restaurant|attraction|sightseeing|transport|hotel|other", "price_estimate": 0}]}`)

	return b.String()
}

// writeFlightConstraints injects arrival/departure windows on the first and
// last day of the trip only.
func writeFlightConstraints(b *strings.Builder, in dayPromptInput) {
	if in.dayNumber == 1 {
		if hour, ok := domain.HourOf(in.flight.ArrivalTime); ok {
			floor := clampHour(hour + arrivalBufferHours)
			fmt.Fprintf(b, "The flight lands at %s. Schedule no activity before %02d:00.\n",
				in.flight.ArrivalTime, floor)
		}
	}
	if in.dayNumber == in.totalDays {
		if hour, ok := domain.HourOf(in.flight.DepartureTime); ok {
			ceiling := clampHour(hour - departureBufferHours)
			fmt.Fprintf(b, "The return flight departs at %s. The last activity must end by %02d:00.\n",
				in.flight.DepartureTime, ceiling)
		}
	}
}

// writeDigest appends a one-line-per-day summary of prior days.
func writeDigest(b *strings.Builder, digest []string) {
	if len(digest) == 0 {
		return
	}
	b.WriteString("\nAlready planned:\n")
	for _, line := range digest {
		fmt.Fprintf(b, "- %s\n", line)
	}
}

// writeBanList appends an explicit no-repeat list for one venue kind.
func writeBanList(b *strings.Builder, kind string, set map[string]struct{}) {
	if len(set) == 0 {
		return
	}
	fmt.Fprintf(b, "\nNever repeat these %s: %s.\n", kind, strings.Join(sortedKeys(set), "; "))
}

// digestLine summarizes one planned day for prompt continuity.
func digestLine(day domain.ItineraryDay) string {
	titles := make([]string, 0, len(day.Activities))
	for _, a := range day.Activities {
		if a.Title != "" {
			titles = append(titles, a.Title)
		}
	}
	return fmt.Sprintf("Day %d: %s", day.DayNumber, strings.Join(titles, "; "))
}

// clampHour clamps an hour value into the valid [0, 23] range.
func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

// activitiesSchema is the JSON-schema constraint for day-planning calls.
func activitiesSchema() *domain.ResponseSchema {
	location := &domain.ResponseSchema{
		Type: domain.SchemaObject,
		Properties: map[string]*domain.ResponseSchema{
			"name":      {Type: domain.SchemaString},
			"address":   {Type: domain.SchemaString},
			"latitude":  {Type: domain.SchemaNumber},
			"longitude": {Type: domain.SchemaNumber},
		},
		Required: []string{"name"},
	}

	activity := &domain.ResponseSchema{
		Type: domain.SchemaObject,
		Properties: map[string]*domain.ResponseSchema{
			"time":        {Type: domain.SchemaString, Description: "start time, HH:MM"},
			"title":       {Type: domain.SchemaString},
			"description": {Type: domain.SchemaString},
			"location":    location,
			"category": {
				Type: domain.SchemaString,
				Enum: domain.CategoryValues(),
			},
			"price_estimate": {Type: domain.SchemaNumber},
		},
		Required: []string{"time", "title", "location", "category"},
	}

	return &domain.ResponseSchema{
		Type: domain.SchemaObject,
		Properties: map[string]*domain.ResponseSchema{
			"activities": {Type: domain.SchemaArray, Items: activity},
		},
		Required: []string{"activities"},
	}
}

// flightSchema is the JSON-schema constraint for flight-discovery calls.
func flightSchema() *domain.ResponseSchema {
	leg := &domain.ResponseSchema{
		Type: domain.SchemaObject,
		Properties: map[string]*domain.ResponseSchema{
			"airline":          {Type: domain.SchemaString},
			"flight_number":    {Type: domain.SchemaString},
			"departure_time":   {Type: domain.SchemaString, Description: "HH:MM local"},
			"arrival_time":     {Type: domain.SchemaString, Description: "HH:MM local"},
			"duration":         {Type: domain.SchemaString},
			"date":             {Type: domain.SchemaString, Description: "YYYY-MM-DD"},
			"price_per_person": {Type: domain.SchemaNumber},
		},
		Required: []string{"airline", "departure_time", "arrival_time", "date"},
	}

	return &domain.ResponseSchema{
		Type: domain.SchemaObject,
		Properties: map[string]*domain.ResponseSchema{
			"outbound_flight": leg,
			"return_flight":   leg,
		},
		Required: []string{"outbound_flight", "return_flight"},
	}
}
