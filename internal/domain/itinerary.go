// Package domain contains the core business entities and rules for the itinerary
// orchestration service. These entities are adapter-agnostic and form the
// foundation upon which all other components are built.
package domain

import "time"

// Category classifies an activity within an itinerary day.
type Category string

// Known activity categories.
const (
	CategoryRestaurant  Category = "restaurant"
	CategoryAttraction  Category = "attraction"
	CategorySightseeing Category = "sightseeing"
	CategoryTransport   Category = "transport"
	CategoryHotel       Category = "hotel"
	CategoryOther       Category = "other"
)

// allCategories lists every valid category in schema order.
var allCategories = []Category{
	CategoryRestaurant,
	CategoryAttraction,
	CategorySightseeing,
	CategoryTransport,
	CategoryHotel,
	CategoryOther,
}

// IsValid checks if the category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRestaurant, CategoryAttraction, CategorySightseeing,
		CategoryTransport, CategoryHotel, CategoryOther:
		return true
	default:
		return false
	}
}

// Normalize returns the category itself when valid, CategoryOther otherwise.
// Raw-text completion responses can carry arbitrary category strings; past the
// parsing boundary only known values circulate.
func (c Category) Normalize() Category {
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// CategoryValues returns all valid category names for schema enum construction.
func CategoryValues() []string {
	values := make([]string, len(allCategories))
	for i, c := range allCategories {
		values[i] = string(c)
	}
	return values
}

// Location describes where an activity takes place.
type Location struct {
	// Name is the venue or place name (e.g., "Musée du Louvre")
	Name string `json:"name"`

	// Address is the street address, best effort
	Address string `json:"address,omitempty"`

	// Latitude is the WGS84 latitude of the venue
	Latitude float64 `json:"latitude,omitempty"`

	// Longitude is the WGS84 longitude of the venue
	Longitude float64 `json:"longitude,omitempty"`
}

// Activity is a single scheduled item within an itinerary day.
// Activities have no identity beyond their position within the day; the
// completion service is instructed to emit them in time order, but ordering
// is not enforced here.
type Activity struct {
	// Time is the scheduled start time in HH:MM local format
	Time string `json:"time"`

	// Title is a short activity headline
	Title string `json:"title"`

	// Description explains the activity in a sentence or two
	Description string `json:"description,omitempty"`

	// Location is where the activity takes place
	Location Location `json:"location"`

	// Category classifies the activity
	Category Category `json:"category"`

	// PriceEstimate is the estimated per-person cost, when known
	PriceEstimate float64 `json:"price_estimate,omitempty"`
}

// ItineraryDay is one planned calendar day of a trip.
type ItineraryDay struct {
	// DayNumber is the 1-based day index within the trip
	DayNumber int `json:"day_number"`

	// Date is the calendar date in YYYY-MM-DD format (start_date + day_number - 1)
	Date string `json:"date"`

	// Activities is the ordered sequence of planned activities
	Activities []Activity `json:"activities"`
}

// PlanMode identifies how a planning run was scoped.
type PlanMode string

// Planning modes.
const (
	// ModeFresh plans the whole trip from scratch, including flight discovery.
	ModeFresh PlanMode = "fresh"

	// ModeReplan regenerates a subset of days, reusing the stored flight.
	ModeReplan PlanMode = "replan"
)

// FlightSource records where the run's flight constraints came from.
type FlightSource string

// Flight resolution outcomes.
const (
	// FlightDiscovered means the completion service returned a usable flight.
	FlightDiscovered FlightSource = "discovered"

	// FlightStored means the flight was re-read from a persisted component.
	FlightStored FlightSource = "stored"

	// FlightFallback means the fixed placeholder flight was used.
	FlightFallback FlightSource = "fallback"
)

// ItineraryResult is the product of one orchestrator run.
type ItineraryResult struct {
	// DailyItinerary contains only the days within the requested range,
	// in increasing day_number order.
	DailyItinerary []ItineraryDay `json:"daily_itinerary"`

	// Metadata describes how the run went. The itinerary shape is always
	// complete; this is where degraded content becomes visible to operators.
	Metadata PlanMetadata `json:"metadata"`
}

// PlanMetadata summarizes one planning run.
type PlanMetadata struct {
	// TripID echoes the trip identifier, when one was supplied
	TripID string `json:"trip_id,omitempty"`

	// Mode is fresh or replan
	Mode PlanMode `json:"mode"`

	// DaysRequested is the size of the requested day range
	DaysRequested int `json:"days_requested"`

	// DaysGenerated is the number of days with real generated content
	DaysGenerated int `json:"days_generated"`

	// DaysSubstituted is the number of days replaced by the fallback day
	DaysSubstituted int `json:"days_substituted"`

	// FlightSource records where flight constraints came from
	FlightSource FlightSource `json:"flight_source"`

	// GeneratedAt is when the run completed
	GeneratedAt time.Time `json:"generated_at"`

	// DurationMs is the total run duration in milliseconds
	DurationMs int64 `json:"duration_ms"`
}
