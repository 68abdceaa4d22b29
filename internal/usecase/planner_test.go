package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/infrastructure/timeutil"
)

const testFlightJSON = `{
	"outbound_flight": {"airline": "Air France", "flight_number": "AF 101", "departure_time": "08:00", "arrival_time": "14:00", "duration": "5h", "date": "2026-05-01", "price_per_person": 250},
	"return_flight": {"airline": "Air France", "flight_number": "AF 102", "departure_time": "18:00", "arrival_time": "23:30", "duration": "5h", "date": "2026-05-03", "price_per_person": 250}
}`

func plannerTrip() domain.TripRequest {
	return domain.TripRequest{
		ID:          "trip-123",
		Destination: "Paris",
		Origin:      "Tel Aviv",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-03",
		NumAdults:   2,
	}
}

func testConfig() *Config {
	return &Config{
		CompletionTimeout: time.Second,
		RetryAttempts:     1,
		Clock:             timeutil.NewMockClockFromString("2026-04-01T12:00:00Z"),
	}
}

func dayResult(title string, category domain.Category) domain.CompletionResult {
	payload := fmt.Sprintf(
		`{"activities": [{"time": "10:00", "title": %q, "description": "a stop", "location": {"name": %q}, "category": %q, "price_estimate": 20}]}`,
		title, title, category)
	return domain.StructuredResult(json.RawMessage(payload))
}

func isFlightPrompt(req domain.CompletionRequest) bool {
	return strings.Contains(req.Prompt, "round-trip flight")
}

func TestPlanTrip_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	tests := []struct {
		name   string
		modify func(*PlanRequest)
	}{
		{
			name:   "missing destination",
			modify: func(r *PlanRequest) { r.Trip.Destination = "" },
		},
		{
			name:   "malformed start date",
			modify: func(r *PlanRequest) { r.Trip.StartDate = "May 1st" },
		},
		{
			name:   "start day beyond trip end",
			modify: func(r *PlanRequest) { r.StartDay = 7 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PlanRequest{Trip: plannerTrip()}
			tt.modify(&req)

			result, err := planner.PlanTrip(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Nil(t, result)
		})
	}
}

func TestPlanTrip_TripTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)

	cfg := testConfig()
	cfg.MaxTripDays = 2
	planner := NewTripPlanner(completion, store, cfg)

	_, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "limit is 2")
}

func TestPlanTrip_FreshPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	var dayPrompts []string
	dayCount := 0
	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			dayCount++
			dayPrompts = append(dayPrompts, req.Prompt)
			return dayResult(fmt.Sprintf("Cafe Number %d", dayCount), domain.CategoryRestaurant), nil
		}).
		Times(4)

	var flightComponent domain.TripComponent
	store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.TripComponent) (domain.TripComponent, error) {
			flightComponent = c
			c.ID = "comp-1"
			return c, nil
		})

	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.NoError(t, err)
	require.Len(t, result.DailyItinerary, 3)
	for i, day := range result.DailyItinerary {
		assert.Equal(t, i+1, day.DayNumber)
		require.Len(t, day.Activities, 1)
	}
	assert.Equal(t, "2026-05-01", result.DailyItinerary[0].Date)
	assert.Equal(t, "2026-05-03", result.DailyItinerary[2].Date)

	assert.Equal(t, domain.ModeFresh, result.Metadata.Mode)
	assert.Equal(t, domain.FlightDiscovered, result.Metadata.FlightSource)
	assert.Equal(t, 3, result.Metadata.DaysRequested)
	assert.Equal(t, 3, result.Metadata.DaysGenerated)
	assert.Equal(t, 0, result.Metadata.DaysSubstituted)
	assert.Equal(t, "trip-123", result.Metadata.TripID)

	// The discovered flight is persisted with the total trip price.
	assert.Equal(t, domain.ComponentFlight, flightComponent.Type)
	assert.Equal(t, "Air France", flightComponent.Flight.Outbound.Airline)
	assert.Equal(t, 1000.0, flightComponent.Price, "500 per person for 2 travellers")

	// Day one carries the arrival floor; later days ban day one's venues.
	require.Len(t, dayPrompts, 3)
	assert.Contains(t, dayPrompts[0], "no activity before 16:00")
	assert.Contains(t, dayPrompts[1], "Day 1: Cafe Number 1")
	assert.Contains(t, dayPrompts[1], "Never repeat these restaurants: cafe number 1.")
	assert.Contains(t, dayPrompts[2], "cafe number 1; cafe number 2")
	assert.Contains(t, dayPrompts[2], "must end by 15:00")
}

func TestPlanTrip_DayFailureSubstitutesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	dayCount := 0
	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			dayCount++
			if dayCount == 2 {
				return domain.TextResult("sorry, I cannot help with that"), nil
			}
			return dayResult(fmt.Sprintf("Stop %d", dayCount), domain.CategoryAttraction), nil
		}).
		Times(4)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.TripComponent) (domain.TripComponent, error) {
			return c, nil
		})

	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.NoError(t, err, "per-day failures never abort the run")
	require.Len(t, result.DailyItinerary, 3)

	substituted := result.DailyItinerary[1]
	assert.Equal(t, 2, substituted.DayNumber)
	assert.Equal(t, "2026-05-02", substituted.Date)
	require.Len(t, substituted.Activities, 1)
	assert.Contains(t, substituted.Activities[0].Title, "Free day to explore Paris")

	assert.Equal(t, 1, result.Metadata.DaysSubstituted)
	assert.Equal(t, 2, result.Metadata.DaysGenerated)
}

func TestPlanTrip_FlightDiscoveryFailureUsesFallbackFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.CompletionResult{}, errors.New("upstream unavailable")
			}
			return dayResult("Stop", domain.CategoryAttraction), nil
		}).
		Times(4)

	var flightComponent domain.TripComponent
	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.TripComponent) (domain.TripComponent, error) {
			flightComponent = c
			return c, nil
		})

	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.NoError(t, err)
	assert.Equal(t, domain.FlightFallback, result.Metadata.FlightSource)
	assert.Equal(t, fallbackAirline, flightComponent.Flight.Outbound.Airline,
		"the placeholder flight is still persisted")
}

func TestPlanTrip_StoreFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			return dayResult("Stop", domain.CategoryAttraction), nil
		}).
		Times(4)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.TripComponent{}, errors.New("connection refused"))

	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.NoError(t, err, "persistence is best effort")
	assert.Len(t, result.DailyItinerary, 3)
}

func TestPlanTrip_EmptyTripIDSkipsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	trip := plannerTrip()
	trip.ID = ""

	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			return dayResult("Check-in at Hotel Lumiere", domain.CategoryHotel), nil
		}).
		Times(4)

	// No store expectations: nothing may be written for an anonymous trip.
	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: trip})

	require.NoError(t, err)
	assert.Len(t, result.DailyItinerary, 3)
	assert.Empty(t, result.Metadata.TripID)
}

func TestPlanTrip_PersistsHotelCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	dayCount := 0
	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			dayCount++
			if dayCount == 1 {
				return dayResult("Check-in at Hotel Lumiere", domain.CategoryHotel), nil
			}
			return dayResult(fmt.Sprintf("Stop %d", dayCount), domain.CategoryAttraction), nil
		}).
		Times(4)

	var created []domain.TripComponent
	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.TripComponent) (domain.TripComponent, error) {
			created = append(created, c)
			return c, nil
		}).
		Times(2)

	_, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: plannerTrip()})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, domain.ComponentFlight, created[0].Type)
	assert.Equal(t, domain.ComponentHotel, created[1].Type)
	assert.Equal(t, "Check-in at Hotel Lumiere", created[1].Title)
	require.NotNil(t, created[1].Hotel)
}

func TestPlanTrip_ReplanUsesStoredFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	var flightDetails domain.FlightDetails
	require.NoError(t, json.Unmarshal([]byte(testFlightJSON), &flightDetails))

	store.EXPECT().
		ListByTrip(gomock.Any(), "trip-123").
		Return([]domain.TripComponent{
			{ID: "comp-1", Type: domain.ComponentFlight, Flight: &flightDetails},
		}, nil)

	var dayPrompt string
	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			dayPrompt = req.Prompt
			return dayResult("Musee d'Orsay", domain.CategoryAttraction), nil
		})

	original := []domain.ItineraryDay{
		{DayNumber: 1, Date: "2026-05-01", Activities: []domain.Activity{
			{Title: "Louvre Museum", Category: domain.CategoryAttraction},
		}},
		{DayNumber: 2, Date: "2026-05-02", Activities: []domain.Activity{
			{Title: "Le Comptoir", Category: domain.CategoryRestaurant},
		}},
	}

	result, err := planner.PlanTrip(context.Background(), PlanRequest{
		Trip:     plannerTrip(),
		StartDay: 2,
		EndDay:   2,
		Original: original,
	})

	require.NoError(t, err)
	require.Len(t, result.DailyItinerary, 1, "only the requested day is returned")
	assert.Equal(t, 2, result.DailyItinerary[0].DayNumber)
	assert.Equal(t, "Musee d'Orsay", result.DailyItinerary[0].Activities[0].Title)

	assert.Equal(t, domain.ModeReplan, result.Metadata.Mode)
	assert.Equal(t, domain.FlightStored, result.Metadata.FlightSource)
	assert.Equal(t, 1, result.Metadata.DaysRequested)

	assert.Contains(t, dayPrompt, "revising")
	assert.Contains(t, dayPrompt, "Day 1: Louvre Museum")
	assert.Contains(t, dayPrompt, "Never repeat these restaurants: le comptoir.")
	assert.Contains(t, dayPrompt, "Never repeat these attractions: louvre museum.")
}

func TestPlanTrip_ReplanWithoutStoredFlightFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	store.EXPECT().
		ListByTrip(gomock.Any(), "trip-123").
		Return(nil, errors.New("connection refused"))

	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(dayResult("Stop", domain.CategoryAttraction), nil)

	result, err := planner.PlanTrip(context.Background(), PlanRequest{
		Trip:     plannerTrip(),
		StartDay: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FlightFallback, result.Metadata.FlightSource)
	require.Len(t, result.DailyItinerary, 1)
	assert.Equal(t, 3, result.DailyItinerary[0].DayNumber)
}

func TestPlanTrip_ReplanReplacesStoredHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)
	planner := NewTripPlanner(completion, store, testConfig())

	var flightDetails domain.FlightDetails
	require.NoError(t, json.Unmarshal([]byte(testFlightJSON), &flightDetails))

	existing := []domain.TripComponent{
		{ID: "comp-flight", Type: domain.ComponentFlight, Flight: &flightDetails},
		{ID: "comp-hotel", Type: domain.ComponentHotel, Title: "Old Hotel"},
	}

	// Once for flight resolution, once for hotel replacement.
	store.EXPECT().ListByTrip(gomock.Any(), "trip-123").Return(existing, nil).Times(2)
	store.EXPECT().Delete(gomock.Any(), "comp-hotel").Return(nil)

	var created domain.TripComponent
	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.TripComponent) (domain.TripComponent, error) {
			created = c
			return c, nil
		})

	dayCount := 0
	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.CompletionRequest) (domain.CompletionResult, error) {
			dayCount++
			if dayCount == 1 {
				return dayResult("Check-in at Hotel Nouveau", domain.CategoryHotel), nil
			}
			return dayResult(fmt.Sprintf("Stop %d", dayCount), domain.CategoryAttraction), nil
		}).
		Times(3)

	original := []domain.ItineraryDay{
		{DayNumber: 1, Date: "2026-05-01"},
		{DayNumber: 2, Date: "2026-05-02"},
		{DayNumber: 3, Date: "2026-05-03"},
	}

	result, err := planner.PlanTrip(context.Background(), PlanRequest{
		Trip:     plannerTrip(),
		Original: original,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeReplan, result.Metadata.Mode)
	assert.Equal(t, domain.ComponentHotel, created.Type)
	assert.Equal(t, "Check-in at Hotel Nouveau", created.Title)
}

func TestPlanTrip_MetadataTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)

	cfg := testConfig()
	planner := NewTripPlanner(completion, store, cfg)

	trip := plannerTrip()
	trip.ID = ""
	trip.EndDate = "2026-05-01"

	completion.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
			if isFlightPrompt(req) {
				return domain.StructuredResult(json.RawMessage(testFlightJSON)), nil
			}
			return dayResult("Stop", domain.CategoryAttraction), nil
		}).
		Times(2)

	result, err := planner.PlanTrip(context.Background(), PlanRequest{Trip: trip})

	require.NoError(t, err)
	expected, _ := time.Parse(time.RFC3339, "2026-04-01T12:00:00Z")
	assert.Equal(t, expected, result.Metadata.GeneratedAt)
	assert.Equal(t, int64(0), result.Metadata.DurationMs, "mock clock does not advance")
}

func TestNewTripPlanner_NilConfigUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := domain.NewMockCompletionService(ctrl)
	store := domain.NewMockComponentStore(ctrl)

	planner := NewTripPlanner(completion, store, nil)

	require.NotNil(t, planner)
	impl, ok := planner.(*tripPlanner)
	require.True(t, ok)
	assert.Equal(t, DefaultCompletionTimeout, impl.cfg.CompletionTimeout)
	assert.Equal(t, DefaultRetryAttempts, impl.cfg.RetryAttempts)
	assert.Equal(t, DefaultMaxTripDays, impl.cfg.MaxTripDays)
	assert.NotNil(t, impl.classifier)
	assert.NotNil(t, impl.clock)
}
