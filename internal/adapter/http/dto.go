package http

// PlanResponseDTO is the data transfer object for planning responses.
// It matches the expected API output format with snake_case fields.
type PlanResponseDTO struct {
	DailyItinerary []DayDTO        `json:"daily_itinerary"`
	Metadata       PlanMetadataDTO `json:"metadata"`
}

// DayDTO represents one itinerary day in requests and responses.
type DayDTO struct {
	DayNumber  int           `json:"day_number"`
	Date       string        `json:"date"`
	Activities []ActivityDTO `json:"activities"`
}

// ActivityDTO represents one scheduled activity.
type ActivityDTO struct {
	Time          string      `json:"time"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Location      LocationDTO `json:"location"`
	Category      string      `json:"category"`
	PriceEstimate float64     `json:"price_estimate,omitempty"`
}

// LocationDTO represents a venue location.
type LocationDTO struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// PlanMetadataDTO contains metadata about the planning run.
type PlanMetadataDTO struct {
	TripID          string `json:"trip_id,omitempty"`
	Mode            string `json:"mode"`
	DaysRequested   int    `json:"days_requested"`
	DaysGenerated   int    `json:"days_generated"`
	DaysSubstituted int    `json:"days_substituted"`
	FlightSource    string `json:"flight_source"`
	GeneratedAt     string `json:"generated_at"`
	DurationMs      int64  `json:"duration_ms"`
}

// ComponentListDTO is the response for the component listing endpoint.
type ComponentListDTO struct {
	TripID     string         `json:"trip_id"`
	Components []ComponentDTO `json:"components"`
}

// ComponentDTO represents one persisted trip component.
type ComponentDTO struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Flight      *FlightDetailsDTO `json:"flight,omitempty"`
	Hotel       *HotelDetailsDTO  `json:"hotel,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

// FlightDetailsDTO represents round-trip flight metadata on a component.
type FlightDetailsDTO struct {
	Outbound FlightLegDTO `json:"outbound_flight"`
	Return   FlightLegDTO `json:"return_flight"`
}

// FlightLegDTO represents one flight leg.
type FlightLegDTO struct {
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flight_number,omitempty"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration,omitempty"`
	Date           string  `json:"date"`
	PricePerPerson float64 `json:"price_per_person,omitempty"`
}

// HotelDetailsDTO represents hotel metadata on a component.
type HotelDetailsDTO struct {
	Address   string   `json:"address,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}
