// Package integration provides helpers and integration tests for the itinerary
// planning system. Integration tests verify that components work together
// correctly, including HTTP handlers, the planner use case, the mock
// completion service, and the in-memory component store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/tripwise/itinerary-orchestration-service/internal/adapter/http"
	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/store/memory"
	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
	Store   domain.ComponentStore
}

// NewTestServer creates a test server backed by the given completion service
// and a fresh in-memory component store.
func NewTestServer(completion domain.CompletionService) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	store := memory.NewStore()
	planner := usecase.NewTripPlanner(completion, store, nil)
	handler := httpAdapter.NewTripHandler(planner, store)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Store:   store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PlanRequest makes a plan request with the given body.
func (ts *TestServer) PlanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/plan",
		Body:   body,
	})
}

// ReplanRequest makes a replan request with the given body.
func (ts *TestServer) ReplanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/replan",
		Body:   body,
	})
}

// ComponentsRequest lists the persisted components for a trip.
func (ts *TestServer) ComponentsRequest(tripID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/trips/" + tripID + "/components",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePlanResponse parses the response body as a plan response.
func (r *Response) ParsePlanResponse() (*httpAdapter.PlanResponseDTO, error) {
	var resp httpAdapter.PlanResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseComponentList parses the response body as a component list.
func (r *Response) ParseComponentList() (*httpAdapter.ComponentListDTO, error) {
	var resp httpAdapter.ComponentListDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// PlanRequestBody is a helper struct for building plan request bodies.
type PlanRequestBody struct {
	TripID      string  `json:"trip_id,omitempty"`
	Destination string  `json:"destination"`
	Origin      string  `json:"origin,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	NumAdults   int     `json:"num_adults"`
	NumChildren int     `json:"num_children,omitempty"`
	BudgetMin   float64 `json:"budget_min,omitempty"`
	BudgetMax   float64 `json:"budget_max,omitempty"`
	TripType    string  `json:"trip_type,omitempty"`
}

// ReplanRequestBody is a helper struct for building replan request bodies.
type ReplanRequestBody struct {
	PlanRequestBody
	StartDay          int                  `json:"start_day"`
	EndDay            int                  `json:"end_day,omitempty"`
	OriginalItinerary []httpAdapter.DayDTO `json:"original_itinerary,omitempty"`
	PriorDays         []httpAdapter.DayDTO `json:"prior_days,omitempty"`
}

// DefaultPlanRequest returns a valid three-day plan request body.
func DefaultPlanRequest() PlanRequestBody {
	return PlanRequestBody{
		TripID:      "trip-integration",
		Destination: "Paris",
		Origin:      "Tel Aviv",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-03",
		NumAdults:   2,
		BudgetMin:   1000,
		BudgetMax:   3000,
	}
}

// CreatePlanner creates a planner use case with the given completion service,
// a fresh in-memory store, and default configuration.
func CreatePlanner(completion domain.CompletionService) (usecase.TripPlannerUseCase, domain.ComponentStore) {
	store := memory.NewStore()
	return usecase.NewTripPlanner(completion, store, nil), store
}

// CreatePlannerWithConfig creates a planner use case with custom configuration.
func CreatePlannerWithConfig(completion domain.CompletionService, config *usecase.Config) (usecase.TripPlannerUseCase, domain.ComponentStore) {
	store := memory.NewStore()
	return usecase.NewTripPlanner(completion, store, config), store
}

// DefaultTripRequest returns a valid trip request for driving the use case directly.
func DefaultTripRequest() domain.TripRequest {
	return domain.TripRequest{
		ID:          "trip-integration",
		Destination: "Paris",
		Origin:      "Tel Aviv",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-03",
		NumAdults:   2,
		BudgetMin:   1000,
		BudgetMax:   3000,
	}
}
