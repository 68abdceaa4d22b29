package domain

import "time"

// ComponentType identifies the kind of bookable element a TripComponent holds.
type ComponentType string

// Known component types.
const (
	ComponentFlight ComponentType = "flight"
	ComponentHotel  ComponentType = "hotel"
)

// IsValid checks if the component type is a known value.
func (t ComponentType) IsValid() bool {
	return t == ComponentFlight || t == ComponentHotel
}

// TripComponent is a persisted side-effect record representing one bookable
// element discovered or confirmed during planning. Components live independently
// of the itinerary day structure.
type TripComponent struct {
	// ID is the unique component identifier (generated on create)
	ID string `json:"id"`

	// TripID links the component to its trip
	TripID string `json:"trip_id"`

	// Type is flight or hotel
	Type ComponentType `json:"type"`

	// Title is a short human-readable summary (e.g., "Flights to Paris")
	Title string `json:"title"`

	// Description carries free-text detail
	Description string `json:"description,omitempty"`

	// Price is the total price for the component
	Price float64 `json:"price"`

	// Flight holds flight-specific metadata when Type is flight
	Flight *FlightDetails `json:"flight,omitempty"`

	// Hotel holds hotel-specific metadata when Type is hotel
	Hotel *HotelDetails `json:"hotel,omitempty"`

	// CreatedAt is when the component record was persisted
	CreatedAt time.Time `json:"created_at"`
}

// FlightLeg describes one direction of a round trip.
type FlightLeg struct {
	// Airline is the operating airline name
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AF-1621")
	FlightNumber string `json:"flight_number"`

	// DepartureTime is the local departure time in HH:MM format
	DepartureTime string `json:"departure_time"`

	// ArrivalTime is the local arrival time in HH:MM format
	ArrivalTime string `json:"arrival_time"`

	// Duration is a human-readable flight duration (e.g., "4h 30m")
	Duration string `json:"duration,omitempty"`

	// Date is the flight date in YYYY-MM-DD format
	Date string `json:"date"`

	// PricePerPerson is the per-passenger fare
	PricePerPerson float64 `json:"price_per_person,omitempty"`
}

// FlightDetails is the metadata payload of a flight component.
type FlightDetails struct {
	// Outbound is the leg from origin to destination
	Outbound FlightLeg `json:"outbound_flight"`

	// Return is the leg back from the destination
	Return FlightLeg `json:"return_flight"`
}

// HotelDetails is the metadata payload of a hotel component.
type HotelDetails struct {
	// Address is the hotel street address
	Address string `json:"address,omitempty"`

	// Latitude is the WGS84 latitude of the hotel
	Latitude float64 `json:"latitude,omitempty"`

	// Longitude is the WGS84 longitude of the hotel
	Longitude float64 `json:"longitude,omitempty"`

	// Rating is the hotel rating on a 0-5 scale, when known
	Rating float64 `json:"rating,omitempty"`

	// Amenities lists notable hotel amenities
	Amenities []string `json:"amenities,omitempty"`
}
