package http

import (
	"time"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/usecase"
)

// ToDomainTrip converts a plan request body to the domain trip request.
func ToDomainTrip(r *PlanTripRequest) domain.TripRequest {
	return domain.TripRequest{
		ID:          r.TripID,
		Destination: r.Destination,
		Origin:      r.Origin,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		NumAdults:   r.NumAdults,
		NumChildren: r.NumChildren,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		TripType:    r.TripType,
	}
}

// ToPlanRequest converts a replan request body to a use case plan request.
func ToPlanRequest(r *ReplanTripRequest) usecase.PlanRequest {
	return usecase.PlanRequest{
		Trip:     ToDomainTrip(&r.PlanTripRequest),
		StartDay: r.StartDay,
		EndDay:   r.EndDay,
		Original: toDomainDays(r.OriginalItinerary),
		Prior:    toDomainDays(r.PriorDays),
	}
}

func toDomainDays(days []DayDTO) []domain.ItineraryDay {
	if len(days) == 0 {
		return nil
	}
	result := make([]domain.ItineraryDay, len(days))
	for i, d := range days {
		result[i] = domain.ItineraryDay{
			DayNumber:  d.DayNumber,
			Date:       d.Date,
			Activities: toDomainActivities(d.Activities),
		}
	}
	return result
}

func toDomainActivities(activities []ActivityDTO) []domain.Activity {
	result := make([]domain.Activity, len(activities))
	for i, a := range activities {
		result[i] = domain.Activity{
			Time:        a.Time,
			Title:       a.Title,
			Description: a.Description,
			Location: domain.Location{
				Name:      a.Location.Name,
				Address:   a.Location.Address,
				Latitude:  a.Location.Latitude,
				Longitude: a.Location.Longitude,
			},
			Category:      domain.Category(a.Category).Normalize(),
			PriceEstimate: a.PriceEstimate,
		}
	}
	return result
}

// FromItineraryResult converts a planning result to its response DTO.
func FromItineraryResult(result *domain.ItineraryResult) *PlanResponseDTO {
	days := make([]DayDTO, len(result.DailyItinerary))
	for i, d := range result.DailyItinerary {
		days[i] = fromDomainDay(d)
	}

	return &PlanResponseDTO{
		DailyItinerary: days,
		Metadata: PlanMetadataDTO{
			TripID:          result.Metadata.TripID,
			Mode:            string(result.Metadata.Mode),
			DaysRequested:   result.Metadata.DaysRequested,
			DaysGenerated:   result.Metadata.DaysGenerated,
			DaysSubstituted: result.Metadata.DaysSubstituted,
			FlightSource:    string(result.Metadata.FlightSource),
			GeneratedAt:     result.Metadata.GeneratedAt.Format(time.RFC3339),
			DurationMs:      result.Metadata.DurationMs,
		},
	}
}

func fromDomainDay(d domain.ItineraryDay) DayDTO {
	activities := make([]ActivityDTO, len(d.Activities))
	for i, a := range d.Activities {
		activities[i] = ActivityDTO{
			Time:        a.Time,
			Title:       a.Title,
			Description: a.Description,
			Location: LocationDTO{
				Name:      a.Location.Name,
				Address:   a.Location.Address,
				Latitude:  a.Location.Latitude,
				Longitude: a.Location.Longitude,
			},
			Category:      string(a.Category),
			PriceEstimate: a.PriceEstimate,
		}
	}
	return DayDTO{
		DayNumber:  d.DayNumber,
		Date:       d.Date,
		Activities: activities,
	}
}

// FromComponents converts persisted components to the listing DTO.
func FromComponents(tripID string, components []domain.TripComponent) *ComponentListDTO {
	dto := &ComponentListDTO{
		TripID:     tripID,
		Components: make([]ComponentDTO, len(components)),
	}
	for i, c := range components {
		dto.Components[i] = fromDomainComponent(c)
	}
	return dto
}

func fromDomainComponent(c domain.TripComponent) ComponentDTO {
	dto := ComponentDTO{
		ID:          c.ID,
		Type:        string(c.Type),
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.Flight != nil {
		dto.Flight = &FlightDetailsDTO{
			Outbound: fromDomainLeg(c.Flight.Outbound),
			Return:   fromDomainLeg(c.Flight.Return),
		}
	}
	if c.Hotel != nil {
		dto.Hotel = &HotelDetailsDTO{
			Address:   c.Hotel.Address,
			Latitude:  c.Hotel.Latitude,
			Longitude: c.Hotel.Longitude,
			Rating:    c.Hotel.Rating,
			Amenities: c.Hotel.Amenities,
		}
	}
	return dto
}

func fromDomainLeg(leg domain.FlightLeg) FlightLegDTO {
	return FlightLegDTO{
		Airline:        leg.Airline,
		FlightNumber:   leg.FlightNumber,
		DepartureTime:  leg.DepartureTime,
		ArrivalTime:    leg.ArrivalTime,
		Duration:       leg.Duration,
		Date:           leg.Date,
		PricePerPerson: leg.PricePerPerson,
	}
}
