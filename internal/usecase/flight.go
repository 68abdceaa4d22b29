package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/infrastructure/retry"
)

// resolveFlight produces the run's flight constraints. Fresh plans discover a
// flight through the completion service; replans re-read the persisted flight
// component. Both paths degrade to the fixed placeholder flight, so the run
// never aborts over flight resolution.
func (p *tripPlanner) resolveFlight(ctx context.Context, trip domain.TripRequest, replan bool) (domain.FlightInfo, domain.FlightSource) {
	if replan {
		return p.storedFlight(ctx, trip)
	}
	return p.discoverFlight(ctx, trip)
}

// storedFlight re-derives flight constraints from the trip's persisted flight
// component, defaulting individual fields when metadata is incomplete.
func (p *tripPlanner) storedFlight(ctx context.Context, trip domain.TripRequest) (domain.FlightInfo, domain.FlightSource) {
	if trip.ID == "" {
		return domain.FlightInfoFromDetails(nil, trip), domain.FlightFallback
	}

	components, err := p.store.ListByTrip(ctx, trip.ID)
	if err != nil {
		p.log.Warn().Err(err).Str("trip_id", trip.ID).
			Msg("Component lookup failed, using fallback flight times")
		return domain.FlightInfoFromDetails(nil, trip), domain.FlightFallback
	}

	for _, c := range components {
		if c.Type == domain.ComponentFlight {
			return domain.FlightInfoFromDetails(c.Flight, trip), domain.FlightStored
		}
	}

	p.log.Debug().Str("trip_id", trip.ID).Msg("No stored flight component, using fallback flight times")
	return domain.FlightInfoFromDetails(nil, trip), domain.FlightFallback
}

// discoverFlight asks the completion service for a round-trip flight and
// persists the result as a flight component. On any failure the fixed
// placeholder flight is persisted and used instead.
func (p *tripPlanner) discoverFlight(ctx context.Context, trip domain.TripRequest) (domain.FlightInfo, domain.FlightSource) {
	details, err := p.searchFlight(ctx, trip)
	source := domain.FlightDiscovered
	if err != nil {
		p.log.Warn().Err(err).Str("destination", trip.Destination).
			Msg("Flight discovery failed, using placeholder flight")
		details = fallbackFlightDetails(trip)
		source = domain.FlightFallback
	}

	p.persistFlight(ctx, trip, details)
	return domain.FlightInfoFromDetails(details, trip), source
}

// searchFlight runs the flight-discovery completion call and decodes the result.
func (p *tripPlanner) searchFlight(ctx context.Context, trip domain.TripRequest) (*domain.FlightDetails, error) {
	req := domain.CompletionRequest{
		Prompt:     flightSearchPrompt(trip),
		Schema:     flightSchema(),
		WebContext: p.cfg.WebContext,
	}

	result, err := retry.DoWithResult(ctx, func() (domain.CompletionResult, error) {
		cctx, cancel := context.WithTimeout(ctx, p.cfg.CompletionTimeout)
		defer cancel()
		return p.completion.Complete(cctx, req)
	}, p.retryCfg)
	if err != nil {
		return nil, domain.NewCompletionError("flight_search", err)
	}

	return decodeFlight(result)
}

// decodeFlight turns a completion result into validated flight details.
func decodeFlight(result domain.CompletionResult) (*domain.FlightDetails, error) {
	payload := result.JSON()
	if !result.IsStructured() {
		extracted, err := ExtractJSON(result.Text())
		if err != nil {
			return nil, err
		}
		payload = extracted
	}

	var details domain.FlightDetails
	if err := json.Unmarshal(payload, &details); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotJSON, err)
	}

	if details.Outbound.Airline == "" || details.Return.Airline == "" {
		return nil, fmt.Errorf("%w: flight response missing airline", domain.ErrNotJSON)
	}
	if !domain.ValidTimeOfDay(details.Outbound.ArrivalTime) {
		return nil, fmt.Errorf("%w: outbound arrival time %q", domain.ErrNotJSON, details.Outbound.ArrivalTime)
	}
	if !domain.ValidTimeOfDay(details.Return.DepartureTime) {
		return nil, fmt.Errorf("%w: return departure time %q", domain.ErrNotJSON, details.Return.DepartureTime)
	}

	return &details, nil
}

// persistFlight records the resolved flight as a trip component. Persistence
// failures are logged and swallowed: the itinerary matters more than the
// bookkeeping write.
func (p *tripPlanner) persistFlight(ctx context.Context, trip domain.TripRequest, details *domain.FlightDetails) {
	if trip.ID == "" {
		p.log.Debug().Msg("Trip has no ID, skipping flight component")
		return
	}

	perPerson := details.Outbound.PricePerPerson + details.Return.PricePerPerson
	component := domain.TripComponent{
		TripID: trip.ID,
		Type:   domain.ComponentFlight,
		Title:  fmt.Sprintf("Flights to %s", trip.Destination),
		Description: fmt.Sprintf("%s round trip, %s - %s",
			details.Outbound.Airline, details.Outbound.Date, details.Return.Date),
		Price:     perPerson * float64(trip.Travellers()),
		Flight:    details,
		CreatedAt: p.clock.Now(),
	}

	if _, err := p.store.Create(ctx, component); err != nil {
		p.log.Error().Err(err).Str("trip_id", trip.ID).Msg("Failed to persist flight component")
	}
}
