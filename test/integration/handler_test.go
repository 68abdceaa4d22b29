package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/itinerary-orchestration-service/test/mock"
	"github.com/tripwise/itinerary-orchestration-service/test/testutil"
)

func TestHandler_PlanTrip_EndToEnd(t *testing.T) {
	completion := mock.NewCompletion().
		WithStructured(testutil.FlightJSON(t, "Air France", "14:00", "18:00")).
		WithStructured(testutil.DayJSON(t, "attraction", "Eiffel Tower")).
		WithStructured(testutil.DayJSON(t, "restaurant", "Cafe de Flore")).
		WithStructured(testutil.DayJSON(t, "sightseeing", "Montmartre Walk"))

	server := NewTestServer(completion)

	resp := server.PlanRequest(DefaultPlanRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	plan, err := resp.ParsePlanResponse()
	require.NoError(t, err)
	require.Len(t, plan.DailyItinerary, 3)

	assert.Equal(t, "fresh", plan.Metadata.Mode)
	assert.Equal(t, "discovered", plan.Metadata.FlightSource)
	assert.Equal(t, "trip-integration", plan.Metadata.TripID)
	assert.Equal(t, 3, plan.Metadata.DaysRequested)
	assert.Equal(t, 0, plan.Metadata.DaysSubstituted)

	assert.Equal(t, 1, plan.DailyItinerary[0].DayNumber)
	assert.Equal(t, "2026-05-01", plan.DailyItinerary[0].Date)
	assert.Equal(t, "Eiffel Tower", plan.DailyItinerary[0].Activities[0].Title)

	// The discovered flight is visible through the components endpoint
	compResp := server.ComponentsRequest("trip-integration")
	require.Equal(t, http.StatusOK, compResp.Code)

	components, err := compResp.ParseComponentList()
	require.NoError(t, err)
	assert.Equal(t, "trip-integration", components.TripID)
	require.Len(t, components.Components, 1)
	assert.Equal(t, "flight", components.Components[0].Type)
	require.NotNil(t, components.Components[0].Flight)
	assert.Equal(t, "Air France", components.Components[0].Flight.Outbound.Airline)
}

func TestHandler_PlanTrip_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PlanRequestBody)
	}{
		{
			name: "missing destination",
			modify: func(r *PlanRequestBody) {
				r.Destination = ""
			},
		},
		{
			name: "malformed start date",
			modify: func(r *PlanRequestBody) {
				r.StartDate = "01-05-2026"
			},
		},
		{
			name: "end before start",
			modify: func(r *PlanRequestBody) {
				r.StartDate = "2026-05-03"
				r.EndDate = "2026-05-01"
			},
		},
		{
			name: "negative adults",
			modify: func(r *PlanRequestBody) {
				r.NumAdults = -1
			},
		},
	}

	server := NewTestServer(mock.NewCompletion())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := DefaultPlanRequest()
			tt.modify(&body)

			resp := server.PlanRequest(body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)

			errBody, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, "validation_error", errBody["code"])
		})
	}
}

func TestHandler_PlanTrip_DegradedRunStillSucceeds(t *testing.T) {
	// Every completion call returns unusable text: the flight and every day
	// degrade to fallbacks, but the endpoint still returns a complete plan.
	completion := mock.NewCompletion().WithText("I cannot help with that.")

	server := NewTestServer(completion)

	resp := server.PlanRequest(DefaultPlanRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	plan, err := resp.ParsePlanResponse()
	require.NoError(t, err)
	require.Len(t, plan.DailyItinerary, 3)

	assert.Equal(t, "fallback", plan.Metadata.FlightSource)
	assert.Equal(t, 3, plan.Metadata.DaysSubstituted)
	assert.Equal(t, 0, plan.Metadata.DaysGenerated)

	for _, day := range plan.DailyItinerary {
		require.NotEmpty(t, day.Activities)
		assert.Equal(t, "Free day to explore Paris", day.Activities[0].Title)
	}
}

func TestHandler_ReplanTrip_EndToEnd(t *testing.T) {
	// Calls 1-4 serve the fresh plan; call 5 serves the replanned day.
	completion := mock.NewCompletion().
		WithStructured(testutil.FlightJSON(t, "Air France", "14:00", "18:00")).
		WithStructured(testutil.DayJSON(t, "attraction", "Eiffel Tower")).
		WithStructured(testutil.DayJSON(t, "restaurant", "Cafe de Flore")).
		WithStructured(testutil.DayJSON(t, "sightseeing", "Montmartre Walk")).
		WithStructured(testutil.DayJSON(t, "attraction", "Musee d'Orsay"))

	server := NewTestServer(completion)

	planResp := server.PlanRequest(DefaultPlanRequest())
	require.Equal(t, http.StatusOK, planResp.Code)

	plan, err := planResp.ParsePlanResponse()
	require.NoError(t, err)

	replanBody := ReplanRequestBody{
		PlanRequestBody:   DefaultPlanRequest(),
		StartDay:          2,
		EndDay:            2,
		OriginalItinerary: plan.DailyItinerary,
	}

	resp := server.ReplanRequest(replanBody)
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParsePlanResponse()
	require.NoError(t, err)

	assert.Equal(t, "replan", result.Metadata.Mode)
	assert.Equal(t, "stored", result.Metadata.FlightSource)
	require.Len(t, result.DailyItinerary, 1)
	assert.Equal(t, 2, result.DailyItinerary[0].DayNumber)
	assert.Equal(t, "Musee d'Orsay", result.DailyItinerary[0].Activities[0].Title)

	// Replan never re-runs flight discovery
	assert.Equal(t, 5, completion.CallCount())
}

func TestHandler_Health(t *testing.T) {
	server := NewTestServer(mock.NewCompletion())

	resp := server.HealthRequest()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), "ok")
}

func TestHandler_ListComponents_EmptyTrip(t *testing.T) {
	server := NewTestServer(mock.NewCompletion())

	resp := server.ComponentsRequest("unknown-trip")
	require.Equal(t, http.StatusOK, resp.Code)

	components, err := resp.ParseComponentList()
	require.NoError(t, err)
	assert.Equal(t, "unknown-trip", components.TripID)
	assert.Empty(t, components.Components)
}
