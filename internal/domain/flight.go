package domain

import (
	"fmt"
	"regexp"
)

// Default times substituted when persisted flight metadata is incomplete.
const (
	DefaultArrivalTime   = "14:00"
	DefaultDepartureTime = "18:00"
)

// timeOfDayRegex matches clock times in HH:MM format.
var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// FlightInfo is the flight constraint input to day planning. It is derived once
// per run, either from a freshly discovered flight or from a previously persisted
// flight component, and is not owned by the orchestrator beyond the current run.
type FlightInfo struct {
	// ArrivalTime is the outbound arrival time at the destination in HH:MM local format
	ArrivalTime string `json:"arrival_time"`

	// DepartureTime is the return departure time from the destination in HH:MM local format
	DepartureTime string `json:"departure_time"`

	// ArrivalDate is the outbound arrival date (trip start date)
	ArrivalDate string `json:"arrival_date"`

	// DepartureDate is the return departure date (trip end date)
	DepartureDate string `json:"departure_date"`
}

// ValidTimeOfDay reports whether s is a well-formed HH:MM clock time.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// HourOf extracts the hour component from an HH:MM clock time.
// The second return value is false when the time is malformed.
func HourOf(timeOfDay string) (int, bool) {
	if !ValidTimeOfDay(timeOfDay) {
		return 0, false
	}
	var hour, minute int
	if _, err := fmt.Sscanf(timeOfDay, "%02d:%02d", &hour, &minute); err != nil {
		return 0, false
	}
	return hour, true
}

// FlightInfoFromDetails derives the run's flight constraints from persisted
// flight metadata, substituting defaults for incomplete fields.
func FlightInfoFromDetails(details *FlightDetails, trip TripRequest) FlightInfo {
	info := FlightInfo{
		ArrivalTime:   DefaultArrivalTime,
		DepartureTime: DefaultDepartureTime,
		ArrivalDate:   trip.StartDate,
		DepartureDate: trip.EndDate,
	}
	if details == nil {
		return info
	}
	if ValidTimeOfDay(details.Outbound.ArrivalTime) {
		info.ArrivalTime = details.Outbound.ArrivalTime
	}
	if ValidTimeOfDay(details.Return.DepartureTime) {
		info.DepartureTime = details.Return.DepartureTime
	}
	if details.Outbound.Date != "" {
		info.ArrivalDate = details.Outbound.Date
	}
	if details.Return.Date != "" {
		info.DepartureDate = details.Return.Date
	}
	return info
}
