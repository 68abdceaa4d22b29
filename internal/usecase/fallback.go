package usecase

import (
	"fmt"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// Fixed placeholder flight used when discovery fails. Times are chosen so the
// derived activity windows stay generous.
const (
	fallbackAirline          = "Sky Connect"
	fallbackOutboundNumber   = "SC-101"
	fallbackReturnNumber     = "SC-102"
	fallbackOutboundDeparts  = "08:00"
	fallbackOutboundArrives  = "14:00"
	fallbackReturnDeparts    = "18:00"
	fallbackReturnArrives    = "23:30"
	fallbackPricePerPerson   = 350.0
	fallbackActivityTime     = "10:00"
	fallbackActivityCategory = domain.CategoryOther
)

// fallbackFlightDetails builds the placeholder flight for a trip.
func fallbackFlightDetails(trip domain.TripRequest) *domain.FlightDetails {
	return &domain.FlightDetails{
		Outbound: domain.FlightLeg{
			Airline:        fallbackAirline,
			FlightNumber:   fallbackOutboundNumber,
			DepartureTime:  fallbackOutboundDeparts,
			ArrivalTime:    fallbackOutboundArrives,
			Date:           trip.StartDate,
			PricePerPerson: fallbackPricePerPerson,
		},
		Return: domain.FlightLeg{
			Airline:        fallbackAirline,
			FlightNumber:   fallbackReturnNumber,
			DepartureTime:  fallbackReturnDeparts,
			ArrivalTime:    fallbackReturnArrives,
			Date:           trip.EndDate,
			PricePerPerson: fallbackPricePerPerson,
		},
	}
}

// fallbackDay builds the synthetic day substituted when generation or parsing
// fails. The template is deterministic: identical inputs produce identical
// days, and the date/day-number invariants always hold.
func fallbackDay(dayNumber int, date string, destination string) domain.ItineraryDay {
	return domain.ItineraryDay{
		DayNumber: dayNumber,
		Date:      date,
		Activities: []domain.Activity{
			{
				Time:  fallbackActivityTime,
				Title: fmt.Sprintf("Free day to explore %s", destination),
				Description: fmt.Sprintf(
					"Spend the day exploring %s at your own pace - wander the streets, find a local cafe, and follow whatever catches your eye.",
					destination),
				Location:      domain.Location{Name: destination},
				Category:      fallbackActivityCategory,
				PriceEstimate: 0,
			},
		},
	}
}
